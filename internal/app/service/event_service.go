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

type EventService struct {
	eventRepo    repository.EventRepository
	calendarRepo repository.CalendarRepository
}

func NewEventService(eventRepo repository.EventRepository, calendarRepo repository.CalendarRepository) *EventService {
	return &EventService{eventRepo: eventRepo, calendarRepo: calendarRepo}
}

type EventRequest struct {
	CalendarID int       `json:"calendar_id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx, false)
}

func (s *EventService) Create(ctx context.Context, req EventRequest) (*model.Event, error) {
	if req.Title == "" || req.End.Before(req.Start) {
		return nil, common.ErrBadRequest
	}
	if _, err := s.calendarRepo.FindByID(ctx, req.CalendarID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrBadRequest
		}
		return nil, err
	}
	event := &model.Event{
		CalendarID: req.CalendarID,
		Title:      req.Title,
		Start:      req.Start,
		End:        req.End,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id int, req EventRequest) (*model.Event, error) {
	if req.Title == "" || req.End.Before(req.Start) {
		return nil, common.ErrBadRequest
	}
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Title = req.Title
	event.Start = req.Start
	event.End = req.End
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id int) error {
	return s.eventRepo.Delete(ctx, id)
}
