package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/tasks"
	"github.com/google/uuid"
)

type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the user's tasks in insertion order.
func (s *TaskService) List(ctx context.Context, userID int64) ([]*models.Task, error) {
	result, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return result, nil
}

// Create stores a new task with a server-assigned id and completed=false.
func (s *TaskService) Create(ctx context.Context, userID int64, title string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  title,
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return task, nil
}

// Update replaces title and completed together; the contract has
// full-replace semantics, not patch.
func (s *TaskService) Update(ctx context.Context, userID int64, id, title string, completed bool) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}

	task := &models.Task{ID: id, UserID: userID, Title: title, Completed: completed}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the task; common.ErrorNotFound covers both absent and
// foreign tasks.
func (s *TaskService) Delete(ctx context.Context, userID int64, id string) error {
	return s.repo.DeleteByID(ctx, userID, id)
}
