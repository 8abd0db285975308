package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"calendo/internal/common"
	"calendo/internal/domain/model"
)

type ReminderRepository interface {
	List(ctx context.Context, includeHidden bool) ([]model.Reminder, error)
	FindByID(ctx context.Context, id int) (*model.Reminder, error)
	Create(ctx context.Context, reminder *model.Reminder) error
	Delete(ctx context.Context, id int) error
}

type pgReminderRepository struct {
	db *sql.DB
}

func NewPgReminderRepository(db *sql.DB) ReminderRepository {
	return &pgReminderRepository{db: db}
}

func (r *pgReminderRepository) List(ctx context.Context, includeHidden bool) ([]model.Reminder, error) {
	query := `SELECT r.id, r.event_id, r.remind_at, r.note, r.hidden,
	                 e.id, e.calendar_id, e.title, e.start_at, e.end_at, e.hidden
	          FROM reminders r
	          JOIN events e ON e.id = r.event_id`
	if !includeHidden {
		query += ` WHERE r.hidden = false`
	}
	query += ` ORDER BY r.remind_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgReminderRepository.List: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var rem model.Reminder
		e := &model.Event{}
		if err := rows.Scan(
			&rem.ID, &rem.EventID, &rem.RemindAt, &rem.Note, &rem.Hidden,
			&e.ID, &e.CalendarID, &e.Title, &e.Start, &e.End, &e.Hidden,
		); err != nil {
			return nil, fmt.Errorf("pgReminderRepository.List scan: %w", err)
		}
		rem.Event = e
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *pgReminderRepository) FindByID(ctx context.Context, id int) (*model.Reminder, error) {
	rem := &model.Reminder{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, remind_at, note, hidden FROM reminders WHERE id = $1`, id,
	).Scan(&rem.ID, &rem.EventID, &rem.RemindAt, &rem.Note, &rem.Hidden)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgReminderRepository.FindByID: %w", err)
	}
	return rem, nil
}

func (r *pgReminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	query := `INSERT INTO reminders (event_id, remind_at, note, hidden)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		reminder.EventID, reminder.RemindAt, reminder.Note, reminder.Hidden).Scan(&reminder.ID)
	if err != nil {
		return fmt.Errorf("pgReminderRepository.Create: %w", err)
	}
	return nil
}

func (r *pgReminderRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgReminderRepository.Delete: %w", err)
	}
	return checkAffected(res)
}
