package service

import (
	"context"
	"sync"
	"testing"

	"calendo/internal/common"
	"calendo/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalendarRepo struct {
	mu        sync.Mutex
	nextID    int
	calendars map[int]*model.Calendar
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{calendars: make(map[int]*model.Calendar)}
}

func (f *fakeCalendarRepo) List(_ context.Context, includeHidden bool) ([]model.Calendar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Calendar
	for id := 1; id <= f.nextID; id++ {
		c, ok := f.calendars[id]
		if !ok {
			continue
		}
		if c.Hidden && !includeHidden {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCalendarRepo) FindByID(_ context.Context, id int) (*model.Calendar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.calendars[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeCalendarRepo) Create(_ context.Context, calendar *model.Calendar) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	calendar.ID = f.nextID
	cp := *calendar
	f.calendars[calendar.ID] = &cp
	return nil
}

func (f *fakeCalendarRepo) Update(_ context.Context, calendar *model.Calendar) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.calendars[calendar.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *calendar
	f.calendars[calendar.ID] = &cp
	return nil
}

func (f *fakeCalendarRepo) SetHidden(_ context.Context, id int, hidden bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.calendars[id]
	if !ok {
		return common.ErrNotFound
	}
	c.Hidden = hidden
	return nil
}

func (f *fakeCalendarRepo) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.calendars[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.calendars, id)
	return nil
}

func TestCalendarService_CreateGeneratesSlug(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo())

	calendar, err := svc.Create(context.Background(), CalendarRequest{Title: "Team Sync 2026"})
	require.NoError(t, err)
	assert.Equal(t, "team-sync-2026", calendar.Slug)
	assert.NotZero(t, calendar.ID)

	_, err = svc.Create(context.Background(), CalendarRequest{Title: ""})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestCalendarService_HideExcludesFromPublicList(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := NewCalendarService(repo)

	visible, err := svc.Create(context.Background(), CalendarRequest{Title: "Visible"})
	require.NoError(t, err)
	hidden, err := svc.Create(context.Background(), CalendarRequest{Title: "Hidden"})
	require.NoError(t, err)

	_, err = svc.Hide(context.Background(), hidden.ID)
	require.NoError(t, err)

	public, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	admin, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestCalendarService_UpdateRefreshesSlug(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo())

	calendar, err := svc.Create(context.Background(), CalendarRequest{Title: "Old Title"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), calendar.ID, CalendarRequest{Title: "New Title"})
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)

	_, err = svc.Update(context.Background(), 999, CalendarRequest{Title: "X"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
