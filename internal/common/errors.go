// Package common defines sentinel errors shared across FoodCourt client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Checkout precondition / flow errors.
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoPaymentMethod = errors.New("no payment method selected")
	ErrEmptyOrder      = errors.New("failed to add items to the order")
)
