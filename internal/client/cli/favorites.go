package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Like toggles the like state of a food. The flip is optimistic; on a
// remote failure the catalog service rolls it back before returning.
func (a *App) Like(ctx context.Context, args []string) error {
	if !a.session.IsAuthenticated() {
		return errors.New("please log in to like foods")
	}
	if len(args) == 0 {
		return errors.New("usage: like <foodId>")
	}

	food, err := a.catalog.Food(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.catalog.ToggleLike(ctx, food); err != nil {
		return err
	}

	if food.IsLike {
		fmt.Printf("Liked %s (%d likes).\n", food.Name, food.TotalLikes)
	} else {
		fmt.Printf("Unliked %s (%d likes).\n", food.Name, food.TotalLikes)
	}
	return nil
}

// Favorites lists the foods the user has liked.
func (a *App) Favorites(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return errors.New("please log in to see favorites")
	}
	foods, err := a.catalog.Favorites(ctx)
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}
	for _, f := range foods {
		fmt.Printf("%-26s %12s  %s\n", shorten(f.Name, 26), formatPrice(f.Price), f.ID)
	}
	return nil
}

// Rate submits a review for a food.
func (a *App) Rate(ctx context.Context, args []string) error {
	if !a.session.IsAuthenticated() {
		return errors.New("please log in to review foods")
	}
	if len(args) == 0 {
		return errors.New("usage: rate <foodId>")
	}

	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil {
		return errors.New("rating must be a number between 1 and 5")
	}
	review, err := GetMultiline(a.reader, "Your review", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.catalog.Rate(ctx, args[0], rating, review); err != nil {
		return err
	}
	fmt.Println("Thanks for your review!")
	return nil
}
