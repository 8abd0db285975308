package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type RoleRepository interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) error
}

type pgRoleRepository struct {
	db *sql.DB
}

func NewPgRoleRepository(db *sql.DB) RoleRepository {
	return &pgRoleRepository{db: db}
}

func (r *pgRoleRepository) Exists(ctx context.Context, name string) (bool, error) {
	var found string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM roles WHERE name = $1`, name).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("pgRoleRepository.Exists: %w", err)
	}
	return true, nil
}

func (r *pgRoleRepository) Create(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO roles (name) VALUES ($1)`, name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil // already seeded
		}
		return fmt.Errorf("pgRoleRepository.Create: %w", err)
	}
	return nil
}
