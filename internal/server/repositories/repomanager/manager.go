// Package repomanager opens the database, runs migrations, and hands out
// the concrete repositories.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/todolist/internal/server/migrations"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Tasks() tasks.Repository
	Close() error
}

type PostgresRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	tasks tasks.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) Users() users.Repository { return m.users }

func (m *PostgresRepositoryManager) Tasks() tasks.Repository { return m.tasks }

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:    db,
		users: users.NewPostgresRepository(db),
		tasks: tasks.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
