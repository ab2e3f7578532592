package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
)

// CatalogAPI is the slice of the remote client the catalog service needs.
type CatalogAPI interface {
	Foods(ctx context.Context) ([]models.Food, error)
	Food(ctx context.Context, id string) (*models.Food, error)
	LikeFood(ctx context.Context, foodID string) error
	UnlikeFood(ctx context.Context, foodID string) error
	LikedFoods(ctx context.Context) ([]models.Food, error)
	RateFood(ctx context.Context, foodID string, rating int, review string) error
	FoodRatings(ctx context.Context, foodID string) ([]models.Rating, error)
}

// CatalogService exposes read access to the menu plus likes and reviews.
type CatalogService struct {
	api CatalogAPI
}

func NewCatalogService(api CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) Foods(ctx context.Context) ([]models.Food, error) {
	return s.api.Foods(ctx)
}

func (s *CatalogService) Food(ctx context.Context, id string) (*models.Food, error) {
	return s.api.Food(ctx, id)
}

func (s *CatalogService) Favorites(ctx context.Context) ([]models.Food, error) {
	return s.api.LikedFoods(ctx)
}

func (s *CatalogService) Ratings(ctx context.Context, foodID string) ([]models.Rating, error) {
	return s.api.FoodRatings(ctx, foodID)
}

// Rate submits a review. Ratings are 1..5.
func (s *CatalogService) Rate(ctx context.Context, foodID string, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	return s.api.RateFood(ctx, foodID, rating, review)
}

// ToggleLike flips the like state optimistically: the local flag and
// counter change first, the request follows, and a failure rolls the local
// change back before surfacing the error.
func (s *CatalogService) ToggleLike(ctx context.Context, food *models.Food) error {
	apply := func(liked bool) {
		if liked == food.IsLike {
			return
		}
		food.IsLike = liked
		if liked {
			food.TotalLikes++
		} else {
			food.TotalLikes--
		}
	}

	wantLike := !food.IsLike
	apply(wantLike)

	var err error
	if wantLike {
		err = s.api.LikeFood(ctx, food.ID)
	} else {
		err = s.api.UnlikeFood(ctx, food.ID)
	}
	if err != nil {
		apply(!wantLike)
		return fmt.Errorf("toggle like: %w", err)
	}
	return nil
}
