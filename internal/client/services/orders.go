package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodcourt/internal/client/models"
)

// OrdersAPI is the slice of the remote client the orders service needs.
type OrdersAPI interface {
	MyTransactions(ctx context.Context) ([]models.Transaction, error)
	Transaction(ctx context.Context, id string) (*models.Transaction, error)
	CancelTransaction(ctx context.Context, id string) error
}

// OrdersService exposes the current user's transaction history.
type OrdersService struct {
	api OrdersAPI
}

func NewOrdersService(api OrdersAPI) *OrdersService {
	return &OrdersService{api: api}
}

func (s *OrdersService) History(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.api.MyTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *OrdersService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return s.api.Transaction(ctx, id)
}

func (s *OrdersService) Cancel(ctx context.Context, id string) error {
	if err := s.api.CancelTransaction(ctx, id); err != nil {
		return fmt.Errorf("cancel transaction: %w", err)
	}
	return nil
}
