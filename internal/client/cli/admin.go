package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/foodcourt/internal/client/api"
)

var errAdminOnly = errors.New("this command requires an admin account")

// Users lists all accounts (admin).
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		return errAdminOnly
	}
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Printf("%-36s %-6s %-24s %s\n", u.ID, u.Role, shorten(u.Email, 24), u.Name)
	}
	return nil
}

// SetRole changes an account's role (admin).
func (a *App) SetRole(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		return errAdminOnly
	}
	if len(args) < 2 {
		return errors.New("usage: setrole <userId> <admin|user>")
	}
	if err := a.admin.SetRole(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("Role updated.")
	return nil
}

// NewFood interactively creates a menu item (admin).
func (a *App) NewFood(ctx context.Context) error {
	if !a.isAdmin() {
		return errAdminOnly
	}

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Price (IDR)", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price <= 0 {
		return errors.New("price must be a positive number")
	}
	imageURL, err := getSimpleText(a.reader, "Image URL", os.Stdout)
	if err != nil {
		return err
	}
	ingredientsText, err := getSimpleText(a.reader, "Ingredients (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	var ingredients []string
	for _, ing := range strings.Split(ingredientsText, ",") {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}

	req := api.FoodRequest{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		Ingredients: ingredients,
		Price:       price,
	}
	if err := a.admin.CreateFood(ctx, req); err != nil {
		return err
	}
	fmt.Println("Food created.")
	return nil
}

// EditFood updates the descriptive fields of a menu item (admin). Empty
// answers keep the current values.
func (a *App) EditFood(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		return errAdminOnly
	}
	if len(args) == 0 {
		return errors.New("usage: editfood <foodId>")
	}

	food, err := a.catalog.Food(ctx, args[0])
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Name ["+food.Name+"]", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = food.Name
	}
	if description == "" {
		description = food.Description
	}

	req := api.FoodRequest{
		Name:        name,
		Description: description,
		ImageURL:    food.ImageURL,
		Ingredients: food.Ingredients,
		Price:       food.Price,
	}
	if err := a.admin.UpdateFood(ctx, food.ID, req); err != nil {
		return err
	}
	fmt.Println("Food updated.")
	return nil
}

// DeleteFood removes a menu item (admin).
func (a *App) DeleteFood(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		return errAdminOnly
	}
	if len(args) == 0 {
		return errors.New("usage: delfood <foodId>")
	}
	if err := a.admin.DeleteFood(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Food deleted.")
	return nil
}

// AllOrders lists every transaction in the system (admin).
func (a *App) AllOrders(ctx context.Context) error {
	if !a.isAdmin() {
		return errAdminOnly
	}
	txs, err := a.admin.Transactions(ctx)
	if err != nil {
		return err
	}
	for _, tx := range txs {
		fmt.Printf("%-36s %-10s %12s  %s\n", tx.ID, tx.Status, formatPrice(tx.TotalPrice), tx.OrderDate)
	}
	return nil
}

// SetOrderStatus updates a transaction status (admin), e.g. after checking
// a payment proof out of band.
func (a *App) SetOrderStatus(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		return errAdminOnly
	}
	if len(args) < 2 {
		return errors.New("usage: setstatus <orderId> <success|failed>")
	}
	if err := a.admin.SetTransactionStatus(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("Status updated.")
	return nil
}
