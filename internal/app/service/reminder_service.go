package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendo/internal/common"
	"calendo/internal/domain/model"
	"calendo/internal/domain/repository"
)

type ReminderService struct {
	reminderRepo repository.ReminderRepository
	eventRepo    repository.EventRepository
}

func NewReminderService(reminderRepo repository.ReminderRepository, eventRepo repository.EventRepository) *ReminderService {
	return &ReminderService{reminderRepo: reminderRepo, eventRepo: eventRepo}
}

type ReminderRequest struct {
	EventID  int       `json:"event_id"`
	RemindAt time.Time `json:"remind_at"`
	Note     *string   `json:"note,omitempty"`
}

func (s *ReminderService) List(ctx context.Context) ([]model.Reminder, error) {
	return s.reminderRepo.List(ctx, false)
}

func (s *ReminderService) Create(ctx context.Context, req ReminderRequest) (*model.Reminder, error) {
	if req.RemindAt.IsZero() {
		return nil, common.ErrBadRequest
	}
	if _, err := s.eventRepo.FindByID(ctx, req.EventID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrBadRequest
		}
		return nil, err
	}
	reminder := &model.Reminder{
		EventID:  req.EventID,
		RemindAt: req.RemindAt,
		Note:     req.Note,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return reminder, nil
}

func (s *ReminderService) Delete(ctx context.Context, id int) error {
	return s.reminderRepo.Delete(ctx, id)
}
