package service

import (
	"context"
	"fmt"

	"calendo/internal/common"
	"calendo/internal/domain/model"
	"calendo/internal/domain/repository"

	"github.com/gosimple/slug"
)

type CalendarService struct {
	calendarRepo repository.CalendarRepository
}

func NewCalendarService(calendarRepo repository.CalendarRepository) *CalendarService {
	return &CalendarService{calendarRepo: calendarRepo}
}

type CalendarRequest struct {
	Title string `json:"title"`
}

func (s *CalendarService) List(ctx context.Context, includeHidden bool) ([]model.Calendar, error) {
	return s.calendarRepo.List(ctx, includeHidden)
}

func (s *CalendarService) Create(ctx context.Context, req CalendarRequest) (*model.Calendar, error) {
	if req.Title == "" {
		return nil, common.ErrBadRequest
	}
	calendar := &model.Calendar{
		Title: req.Title,
		Slug:  slug.Make(req.Title),
	}
	if err := s.calendarRepo.Create(ctx, calendar); err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}
	return calendar, nil
}

func (s *CalendarService) Update(ctx context.Context, id int, req CalendarRequest) (*model.Calendar, error) {
	if req.Title == "" {
		return nil, common.ErrBadRequest
	}
	calendar, err := s.calendarRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	calendar.Title = req.Title
	calendar.Slug = slug.Make(req.Title)
	if err := s.calendarRepo.Update(ctx, calendar); err != nil {
		return nil, fmt.Errorf("failed to update calendar: %w", err)
	}
	return calendar, nil
}

func (s *CalendarService) Hide(ctx context.Context, id int) (*model.Calendar, error) {
	if err := s.calendarRepo.SetHidden(ctx, id, true); err != nil {
		return nil, err
	}
	return s.calendarRepo.FindByID(ctx, id)
}

func (s *CalendarService) Delete(ctx context.Context, id int) error {
	return s.calendarRepo.Delete(ctx, id)
}
