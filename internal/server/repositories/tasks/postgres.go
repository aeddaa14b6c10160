package tasks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAllByUser(ctx context.Context, userID int64) ([]*models.Task, error) {

	query :=
		`SELECT id, user_id, title, completed, seq FROM todos
         WHERE user_id = $1
         ORDER BY seq
         `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Completed, &task.Seq); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, task *models.Task) error {

	query :=
		`INSERT INTO todos (id, user_id, title, completed)
         VALUES ($1, $2, $3, $4)
         RETURNING seq
         `

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Completed).Scan(&task.Seq)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) error {

	query :=
		`UPDATE todos SET title = $1, completed = $2
         WHERE id = $3 AND user_id = $4
         `

	res, err := r.db.ExecContext(ctx, query, task.Title, task.Completed, task.ID, task.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, userID int64, id string) error {

	query :=
		`DELETE FROM todos
         WHERE id = $1 AND user_id = $2
         `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
