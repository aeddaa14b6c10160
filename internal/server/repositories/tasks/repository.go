package tasks

import (
	"context"

	"github.com/dmitrijs2005/todolist/internal/server/models"
)

// Repository persists to-do items. All operations are scoped to the owning
// user; touching another user's task reports common.ErrorNotFound rather
// than leaking its existence.
type Repository interface {
	GetAllByUser(ctx context.Context, userID int64) ([]*models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	DeleteByID(ctx context.Context, userID int64, id string) error
}
