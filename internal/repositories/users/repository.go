package users

import (
	"context"

	"github.com/dmitrijs2005/userreg/internal/models"
)

// Repository is the data access contract for the users table.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
