package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/foodcourt/internal/common"
)

// Checkout walks the user through payment method selection and places the
// order. On any failure the local cart is preserved so the user can retry.
func (a *App) Checkout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return errors.New("please log in before checking out")
	}
	if a.cart.IsEmpty() {
		return errors.New("your cart is empty")
	}

	methods, err := a.checkout.PaymentMethods(ctx)
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		return errors.New("no payment methods available")
	}

	fmt.Println("Payment methods:")
	for i, m := range methods {
		fmt.Printf("  %d. %s (%s %s)\n", i+1, m.Name, m.VirtualAccountName, m.VirtualAccountNumber)
	}

	choice, err := getSimpleText(a.reader, "Choose a payment method (number)", os.Stdout)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(methods) {
		return errors.New("invalid payment method selection")
	}
	method := methods[idx-1]

	receipt, err := a.checkout.Checkout(ctx, method.ID)
	if err != nil {
		if errors.Is(err, common.ErrEmptyOrder) {
			return errors.New("failed to add items to the order, please try again")
		}
		return fmt.Errorf("checkout failed, please retry: %w", err)
	}

	fmt.Printf("Order placed! Transaction %s via %s (%d entries).\n",
		receipt.TransactionID, method.Name, receipt.Entries)
	if receipt.UsedFallback {
		fmt.Println("Note: the order was built from your full server-side cart; check 'order' for the final item list.")
	}
	return nil
}
