package users

import (
	"context"

	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// Repository persists user accounts.
//
// Create returns common.ErrorAlreadyExists when the username is taken;
// GetByUsername returns common.ErrorNotFound for unknown accounts.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
