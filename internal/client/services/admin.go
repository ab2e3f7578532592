package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodcourt/internal/client/api"
	"github.com/dmitrijs2005/foodcourt/internal/client/models"
)

// AdminAPI is the slice of the remote client the back-office needs.
type AdminAPI interface {
	AllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID, role string) error
	CreateFood(ctx context.Context, req api.FoodRequest) error
	UpdateFood(ctx context.Context, id string, req api.FoodRequest) error
	DeleteFood(ctx context.Context, id string) error
	AllTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id, status string) error
}

// AdminService wraps the back-office CRUD routes. Authorization is enforced
// server-side; the CLI additionally gates these behind session.IsAdmin.
type AdminService struct {
	api AdminAPI
}

func NewAdminService(api AdminAPI) *AdminService {
	return &AdminService{api: api}
}

func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	return s.api.AllUsers(ctx)
}

func (s *AdminService) SetRole(ctx context.Context, userID, role string) error {
	if role != models.RoleAdmin && role != models.RoleUser {
		return fmt.Errorf("unknown role %q", role)
	}
	return s.api.UpdateUserRole(ctx, userID, role)
}

func (s *AdminService) CreateFood(ctx context.Context, req api.FoodRequest) error {
	return s.api.CreateFood(ctx, req)
}

func (s *AdminService) UpdateFood(ctx context.Context, id string, req api.FoodRequest) error {
	return s.api.UpdateFood(ctx, id, req)
}

func (s *AdminService) DeleteFood(ctx context.Context, id string) error {
	return s.api.DeleteFood(ctx, id)
}

func (s *AdminService) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return s.api.AllTransactions(ctx)
}

func (s *AdminService) SetTransactionStatus(ctx context.Context, id, status string) error {
	return s.api.UpdateTransactionStatus(ctx, id, status)
}
