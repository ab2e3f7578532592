// Package services contains the application services of the FoodCourt
// client. This file defines the checkout orchestrator: the one multi-step,
// partial-failure-prone workflow, converting the local cart into a remote
// transaction.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodcourt/internal/client/cart"
	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/common"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// CheckoutAPI is the slice of the remote client checkout needs.
type CheckoutAPI interface {
	CreateCartEntry(ctx context.Context, foodID string) (string, error)
	CartEntries(ctx context.Context) ([]models.CartEntry, error)
	CreateTransaction(ctx context.Context, cartIDs []string, paymentMethodID string) (string, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

// Authenticator is the session predicate checkout gates on.
type Authenticator interface {
	IsAuthenticated() bool
}

// Receipt summarizes a successful checkout.
type Receipt struct {
	TransactionID string
	// Entries is how many server cart entries went into the transaction.
	// With the list-all fallback this can exceed the local unit count, which
	// is worth surfacing to the user.
	Entries      int
	UsedFallback bool
}

// CheckoutService materializes the local cart as server cart entries and
// creates a transaction from them.
type CheckoutService struct {
	api     CheckoutAPI
	cart    *cart.Store
	session Authenticator
	log     logging.Logger
}

func NewCheckoutService(api CheckoutAPI, c *cart.Store, session Authenticator, log logging.Logger) *CheckoutService {
	return &CheckoutService{api: api, cart: c, session: session, log: log}
}

// PaymentMethods lists the payment options for the selection step.
func (s *CheckoutService) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods, err := s.api.PaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

// Checkout runs the order placement workflow:
//
//  1. One create-cart-entry call per unit of quantity, sequentially. The
//     remote contract has no quantity field on entry creation, so a line
//     with quantity 3 costs 3 calls.
//  2. If no usable entry ids came back (the create response shape is not
//     guaranteed), fall back to listing the user's server cart entries and
//     use all of their ids. The fallback is unscoped: leftovers from prior
//     failed attempts are swept into the order. See Receipt.Entries.
//  3. Abort if the id list is still empty.
//  4. Create the transaction from the ids and paymentMethodID.
//  5. Clear the local cart only on success.
//
// Preconditions (checked before any network call): authenticated session,
// non-empty paymentMethodID, non-empty local cart.
//
// On failure at any step the local cart is preserved so the user can retry;
// already-created server entries are left as-is (no compensating delete;
// the fallback path is what picks them up on the next attempt). There is no
// automatic retry, and re-invoking after a failure creates additional
// server entries for the same local lines.
func (s *CheckoutService) Checkout(ctx context.Context, paymentMethodID string) (*Receipt, error) {
	if !s.session.IsAuthenticated() {
		return nil, common.ErrNotAuthenticated
	}
	if paymentMethodID == "" {
		return nil, common.ErrNoPaymentMethod
	}
	if s.cart.IsEmpty() {
		return nil, common.ErrEmptyCart
	}

	var entryIDs []string
	for _, line := range s.cart.Lines() {
		for unit := 0; unit < line.Quantity; unit++ {
			id, err := s.api.CreateCartEntry(ctx, line.FoodID)
			if err != nil {
				return nil, fmt.Errorf("add %q to order: %w", line.Name, err)
			}
			if id != "" {
				entryIDs = append(entryIDs, id)
			}
		}
	}

	usedFallback := false
	if len(entryIDs) == 0 {
		s.log.Warn(ctx, "create calls returned no entry ids, falling back to server cart listing")
		entries, err := s.api.CartEntries(ctx)
		if err != nil {
			return nil, fmt.Errorf("list cart entries: %w", err)
		}
		for _, e := range entries {
			entryIDs = append(entryIDs, e.ID)
		}
		usedFallback = true
	}

	if len(entryIDs) == 0 {
		return nil, common.ErrEmptyOrder
	}

	txID, err := s.api.CreateTransaction(ctx, entryIDs, paymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.cart.Clear()
	s.log.Info(ctx, "order placed", "transaction", txID, "entries", len(entryIDs))
	return &Receipt{TransactionID: txID, Entries: len(entryIDs), UsedFallback: usedFallback}, nil
}
