package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
)

type fakeCatalogAPI struct {
	FoodsRet []models.Food
	FoodRet  *models.Food

	LikeErr     error
	UnlikeErr   error
	LikeCalls   []string
	UnlikeCalls []string

	RateErr      error
	LastRate     int
	LastReview   string
	RatingsRet   []models.Rating
	LikedRet     []models.Food
}

func (f *fakeCatalogAPI) Foods(ctx context.Context) ([]models.Food, error) { return f.FoodsRet, nil }
func (f *fakeCatalogAPI) Food(ctx context.Context, id string) (*models.Food, error) {
	return f.FoodRet, nil
}
func (f *fakeCatalogAPI) LikeFood(ctx context.Context, foodID string) error {
	f.LikeCalls = append(f.LikeCalls, foodID)
	return f.LikeErr
}
func (f *fakeCatalogAPI) UnlikeFood(ctx context.Context, foodID string) error {
	f.UnlikeCalls = append(f.UnlikeCalls, foodID)
	return f.UnlikeErr
}
func (f *fakeCatalogAPI) LikedFoods(ctx context.Context) ([]models.Food, error) {
	return f.LikedRet, nil
}
func (f *fakeCatalogAPI) RateFood(ctx context.Context, foodID string, rating int, review string) error {
	f.LastRate = rating
	f.LastReview = review
	return f.RateErr
}
func (f *fakeCatalogAPI) FoodRatings(ctx context.Context, foodID string) ([]models.Rating, error) {
	return f.RatingsRet, nil
}

func TestToggleLike_LikeSuccess(t *testing.T) {
	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)
	food := &models.Food{ID: "f1", IsLike: false, TotalLikes: 3}

	require.NoError(t, svc.ToggleLike(context.Background(), food))
	require.True(t, food.IsLike)
	require.Equal(t, 4, food.TotalLikes)
	require.Equal(t, []string{"f1"}, api.LikeCalls)
	require.Empty(t, api.UnlikeCalls)
}

func TestToggleLike_UnlikeSuccess(t *testing.T) {
	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)
	food := &models.Food{ID: "f1", IsLike: true, TotalLikes: 3}

	require.NoError(t, svc.ToggleLike(context.Background(), food))
	require.False(t, food.IsLike)
	require.Equal(t, 2, food.TotalLikes)
	require.Equal(t, []string{"f1"}, api.UnlikeCalls)
}

func TestToggleLike_FailureRollsBack(t *testing.T) {
	api := &fakeCatalogAPI{LikeErr: errors.New("boom")}
	svc := NewCatalogService(api)
	food := &models.Food{ID: "f1", IsLike: false, TotalLikes: 3}

	require.Error(t, svc.ToggleLike(context.Background(), food))
	require.False(t, food.IsLike, "optimistic flip must be rolled back")
	require.Equal(t, 3, food.TotalLikes)
}

func TestRate_ValidatesRange(t *testing.T) {
	api := &fakeCatalogAPI{}
	svc := NewCatalogService(api)

	require.Error(t, svc.Rate(context.Background(), "f1", 0, "meh"))
	require.Error(t, svc.Rate(context.Background(), "f1", 6, "wow"))
	require.NoError(t, svc.Rate(context.Background(), "f1", 5, "enak!"))
	require.Equal(t, 5, api.LastRate)
	require.Equal(t, "enak!", api.LastReview)
}
