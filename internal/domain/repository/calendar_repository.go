package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"calendo/internal/common"
	"calendo/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type CalendarRepository interface {
	List(ctx context.Context, includeHidden bool) ([]model.Calendar, error)
	FindByID(ctx context.Context, id int) (*model.Calendar, error)
	Create(ctx context.Context, calendar *model.Calendar) error
	Update(ctx context.Context, calendar *model.Calendar) error
	SetHidden(ctx context.Context, id int, hidden bool) error
	Delete(ctx context.Context, id int) error
}

type pgCalendarRepository struct {
	db *sql.DB
}

func NewPgCalendarRepository(db *sql.DB) CalendarRepository {
	return &pgCalendarRepository{db: db}
}

func (r *pgCalendarRepository) List(ctx context.Context, includeHidden bool) ([]model.Calendar, error) {
	query := `SELECT id, title, slug, hidden FROM calendars`
	if !includeHidden {
		query += ` WHERE hidden = false`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCalendarRepository.List: %w", err)
	}
	defer rows.Close()

	var calendars []model.Calendar
	for rows.Next() {
		var c model.Calendar
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Hidden); err != nil {
			return nil, fmt.Errorf("pgCalendarRepository.List scan: %w", err)
		}
		calendars = append(calendars, c)
	}
	return calendars, rows.Err()
}

func (r *pgCalendarRepository) FindByID(ctx context.Context, id int) (*model.Calendar, error) {
	c := &model.Calendar{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, slug, hidden FROM calendars WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Slug, &c.Hidden)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCalendarRepository.FindByID: %w", err)
	}
	return c, nil
}

func (r *pgCalendarRepository) Create(ctx context.Context, calendar *model.Calendar) error {
	query := `INSERT INTO calendars (title, slug, hidden) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, calendar.Title, calendar.Slug, calendar.Hidden).Scan(&calendar.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("calendar with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgCalendarRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCalendarRepository) Update(ctx context.Context, calendar *model.Calendar) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE calendars SET title = $1, slug = $2 WHERE id = $3`,
		calendar.Title, calendar.Slug, calendar.ID)
	if err != nil {
		return fmt.Errorf("pgCalendarRepository.Update: %w", err)
	}
	return checkAffected(res)
}

func (r *pgCalendarRepository) SetHidden(ctx context.Context, id int, hidden bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE calendars SET hidden = $2 WHERE id = $1`, id, hidden)
	if err != nil {
		return fmt.Errorf("pgCalendarRepository.SetHidden: %w", err)
	}
	return checkAffected(res)
}

func (r *pgCalendarRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgCalendarRepository.Delete: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
