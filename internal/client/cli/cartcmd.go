package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// AddItem puts qty units of a food into the local cart. The cart works
// before authentication; only checkout requires a session.
func (a *App) AddItem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: add <foodId> [qty]")
	}
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return errors.New("quantity must be a positive number")
		}
		qty = n
	}

	food, err := a.catalog.Food(ctx, args[0])
	if err != nil {
		return err
	}

	a.cart.Add(food.ID, food.Name, food.Price, food.ImageURL, qty)
	fmt.Printf("Added %d × %s. Cart total: %s\n", qty, food.Name, formatPrice(a.cart.Total()))
	return nil
}

// ShowCart prints the local cart lines and total.
func (a *App) ShowCart(ctx context.Context) error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	for _, l := range lines {
		fmt.Printf("%-26s %3d × %12s = %12s  (%s)\n",
			shorten(l.Name, 26), l.Quantity, formatPrice(l.UnitPrice),
			formatPrice(l.UnitPrice*float64(l.Quantity)), l.FoodID)
	}
	fmt.Printf("%d items, total %s\n", a.cart.ItemCount(), formatPrice(a.cart.Total()))
	return nil
}

// UpdateItem sets the quantity of a cart line. Quantities below 1 are
// rejected; use remove to drop a line.
func (a *App) UpdateItem(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: update <foodId> <qty>")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.New("quantity must be a number")
	}
	if qty < 1 {
		return errors.New("quantity must be at least 1; use 'remove' to drop the item")
	}

	a.cart.UpdateQuantity(args[0], qty)
	fmt.Printf("Cart total: %s\n", formatPrice(a.cart.Total()))
	return nil
}

// RemoveItem drops a cart line.
func (a *App) RemoveItem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: remove <foodId>")
	}
	a.cart.Remove(args[0])
	fmt.Printf("Removed. Cart total: %s\n", formatPrice(a.cart.Total()))
	return nil
}

// ClearCart empties the local cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear()
	fmt.Println("Cart cleared.")
	return nil
}
