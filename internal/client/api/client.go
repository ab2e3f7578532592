// Package api defines the remote FoodCourt API surface and its HTTP/JSON
// implementation. The backend is treated as a black box: this package owns
// the routes, envelopes and error mapping, nothing else.
package api

import (
	"context"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
)

// RegisterRequest carries the fields of the register route.
type RegisterRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	PasswordRepeat    string `json:"passwordRepeat"`
	Role              string `json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	PhoneNumber       string `json:"phoneNumber"`
}

// ProfileUpdate carries the mutable fields of the current user's profile.
type ProfileUpdate struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	PhoneNumber       string `json:"phoneNumber"`
}

// FoodRequest carries the fields of the food create/update routes.
type FoodRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Ingredients   []string `json:"ingredients"`
	Price         float64  `json:"price,omitempty"`
	PriceDiscount float64  `json:"priceDiscount,omitempty"`
}

// Client is the full remote API surface used by the application. Services
// declare the narrower slice of it they need; the HTTP implementation
// satisfies the union.
type Client interface {
	// SetToken installs (or clears, with "") the bearer token stamped on
	// subsequent requests. The session store calls this on every transition.
	SetToken(token string)

	// Auth.
	Register(ctx context.Context, req RegisterRequest) error
	Authenticate(ctx context.Context, email, password string) (string, error)
	// InvalidateSession revokes the given token server-side. The token is
	// explicit (not the stored one) so a detached logout call cannot race
	// the session store clearing the client token.
	InvalidateSession(ctx context.Context, token string) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req ProfileUpdate) error

	// Users (admin).
	AllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID, role string) error

	// Catalog.
	Foods(ctx context.Context) ([]models.Food, error)
	Food(ctx context.Context, id string) (*models.Food, error)
	CreateFood(ctx context.Context, req FoodRequest) error
	UpdateFood(ctx context.Context, id string, req FoodRequest) error
	DeleteFood(ctx context.Context, id string) error

	// Likes and reviews.
	LikeFood(ctx context.Context, foodID string) error
	UnlikeFood(ctx context.Context, foodID string) error
	LikedFoods(ctx context.Context) ([]models.Food, error)
	RateFood(ctx context.Context, foodID string, rating int, review string) error
	FoodRatings(ctx context.Context, foodID string) ([]models.Rating, error)

	// Server cart. CreateCartEntry adds one unit of one food; the response
	// shape is not guaranteed, so the returned id may be empty with a nil
	// error.
	CreateCartEntry(ctx context.Context, foodID string) (string, error)
	UpdateCartEntry(ctx context.Context, cartID string, quantity int) error
	DeleteCartEntry(ctx context.Context, cartID string) error
	CartEntries(ctx context.Context) ([]models.CartEntry, error)

	// Payments and transactions.
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	CreateTransaction(ctx context.Context, cartIDs []string, paymentMethodID string) (string, error)
	Transaction(ctx context.Context, id string) (*models.Transaction, error)
	MyTransactions(ctx context.Context) ([]models.Transaction, error)
	AllTransactions(ctx context.Context) ([]models.Transaction, error)
	CancelTransaction(ctx context.Context, id string) error
	UpdateTransactionStatus(ctx context.Context, id, status string) error
}
