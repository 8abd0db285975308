package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"calendo/internal/common"
	"calendo/internal/domain/model"
)

type EventRepository interface {
	List(ctx context.Context, includeHidden bool) ([]model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id int) error
}

type pgEventRepository struct {
	db *sql.DB
}

func NewPgEventRepository(db *sql.DB) EventRepository {
	return &pgEventRepository{db: db}
}

func (r *pgEventRepository) List(ctx context.Context, includeHidden bool) ([]model.Event, error) {
	query := `SELECT e.id, e.calendar_id, e.title, e.start_at, e.end_at, e.hidden,
	                 c.id, c.title, c.slug, c.hidden
	          FROM events e
	          JOIN calendars c ON c.id = e.calendar_id`
	if !includeHidden {
		query += ` WHERE e.hidden = false`
	}
	query += ` ORDER BY e.start_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgEventRepository.List: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		c := &model.Calendar{}
		if err := rows.Scan(
			&e.ID, &e.CalendarID, &e.Title, &e.Start, &e.End, &e.Hidden,
			&c.ID, &c.Title, &c.Slug, &c.Hidden,
		); err != nil {
			return nil, fmt.Errorf("pgEventRepository.List scan: %w", err)
		}
		e.Calendar = c
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *pgEventRepository) FindByID(ctx context.Context, id int) (*model.Event, error) {
	e := &model.Event{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, calendar_id, title, start_at, end_at, hidden FROM events WHERE id = $1`, id,
	).Scan(&e.ID, &e.CalendarID, &e.Title, &e.Start, &e.End, &e.Hidden)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEventRepository.FindByID: %w", err)
	}
	return e, nil
}

func (r *pgEventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (calendar_id, title, start_at, end_at, hidden)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		event.CalendarID, event.Title, event.Start, event.End, event.Hidden).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Create: %w", err)
	}
	return nil
}

func (r *pgEventRepository) Update(ctx context.Context, event *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET title = $1, start_at = $2, end_at = $3 WHERE id = $4`,
		event.Title, event.Start, event.End, event.ID)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Update: %w", err)
	}
	return checkAffected(res)
}

func (r *pgEventRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete: %w", err)
	}
	return checkAffected(res)
}
