package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"calendo/internal/domain/model"
)

type TwoFactorCodeRepository interface {
	Create(ctx context.Context, code *model.TwoFactorCode) error
	// Consume atomically marks the matching challenge used and reports whether
	// one was claimed. Among several matching rows the latest-expiry one wins.
	Consume(ctx context.Context, userID, code string, now time.Time) (bool, error)
}

type pgTwoFactorCodeRepository struct {
	db *sql.DB
}

func NewPgTwoFactorCodeRepository(db *sql.DB) TwoFactorCodeRepository {
	return &pgTwoFactorCodeRepository{db: db}
}

func (r *pgTwoFactorCodeRepository) Create(ctx context.Context, code *model.TwoFactorCode) error {
	query := `INSERT INTO two_factor_codes (user_id, code, expires_at, used)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, code.UserID, code.Code, code.ExpiresAt, code.Used).Scan(&code.ID)
	if err != nil {
		return fmt.Errorf("pgTwoFactorCodeRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTwoFactorCodeRepository) Consume(ctx context.Context, userID, code string, now time.Time) (bool, error) {
	// Single conditional update so two racing verifications cannot both claim
	// the same challenge.
	query := `UPDATE two_factor_codes SET used = true
	          WHERE id = (
	              SELECT id FROM two_factor_codes
	              WHERE user_id = $1 AND code = $2 AND used = false AND expires_at > $3
	              ORDER BY expires_at DESC
	              LIMIT 1
	          ) AND used = false`
	res, err := r.db.ExecContext(ctx, query, userID, code, now)
	if err != nil {
		return false, fmt.Errorf("pgTwoFactorCodeRepository.Consume: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("pgTwoFactorCodeRepository.Consume: %w", err)
	}
	return affected == 1, nil
}
