package cli

import (
	"context"
	"errors"
	"fmt"
)

// Orders lists the current user's transaction history.
func (a *App) Orders(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return errors.New("please log in to see your orders")
	}
	txs, err := a.orders.History(ctx)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	for _, tx := range txs {
		fmt.Printf("%-36s %-10s %12s  %s\n", tx.ID, tx.Status, formatPrice(tx.TotalPrice), tx.OrderDate)
	}
	return nil
}

// ShowOrder prints one transaction with its items.
func (a *App) ShowOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: order <orderId>")
	}
	tx, err := a.orders.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Order %s: %s, %s\n", tx.ID, tx.Status, formatPrice(tx.TotalPrice))
	fmt.Printf("Invoice %s, paid via %s\n", tx.InvoiceID, tx.PaymentMethod.Name)
	for _, item := range tx.Items {
		fmt.Printf("  %3d × %s\n", item.Quantity, item.Food.Name)
	}
	return nil
}

// CancelOrder cancels a pending transaction.
func (a *App) CancelOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: cancel <orderId>")
	}
	if err := a.orders.Cancel(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Order cancelled.")
	return nil
}
