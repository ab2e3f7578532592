package cli

import (
	"context"
	"errors"
	"fmt"
)

// Menu lists the catalog.
func (a *App) Menu(ctx context.Context) error {
	foods, err := a.catalog.Foods(ctx)
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		fmt.Println("The menu is empty.")
		return nil
	}

	for _, f := range foods {
		like := " "
		if f.IsLike {
			like = "*"
		}
		fmt.Printf("%s %-26s %12s  %-36s  rating %.1f (%d likes)\n",
			like, shorten(f.Name, 26), formatPrice(f.Price), f.ID, f.Rating, f.TotalLikes)
	}
	return nil
}

// ShowFood prints one food with its reviews.
func (a *App) ShowFood(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: show <foodId>")
	}
	food, err := a.catalog.Food(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", food.Name, formatPrice(food.Price))
	if food.PriceDiscount > 0 && food.PriceDiscount < food.Price {
		fmt.Printf("Discounted: %s\n", formatPrice(food.PriceDiscount))
	}
	fmt.Println(food.Description)
	if len(food.Ingredients) > 0 {
		fmt.Printf("Ingredients: %v\n", food.Ingredients)
	}
	fmt.Printf("Rating %.1f, %d likes\n", food.Rating, food.TotalLikes)

	ratings, err := a.catalog.Ratings(ctx, food.ID)
	if err != nil {
		// The detail is already on screen; reviews are an extra.
		a.log.Warn(ctx, "could not load reviews", "food", food.ID, "error", err)
		return nil
	}
	for _, r := range ratings {
		fmt.Printf("  [%.0f/5] %s - %s\n", r.Rating, shorten(r.Review, 60), r.User.Name)
	}
	return nil
}
