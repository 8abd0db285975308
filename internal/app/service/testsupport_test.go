package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"calendo/internal/common"
	"calendo/internal/domain/model"
	"calendo/internal/platform/config"
)

func testConfig() {
	config.AppConfig = &config.Config{
		JWTKey:      []byte("test-signing-key"),
		JWTIssuer:   "calendo-test",
		JWTAudience: "calendo-test-clients",
		JWTExp:      time.Hour,
	}
}

// --- in-memory fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return common.ErrConflict
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []*model.User
	for _, u := range f.users {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.Active = active
	return nil
}

func (f *fakeUserRepo) SetLockedUntil(_ context.Context, id string, until *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.LockedUntil = until
	return nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id string, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeRoleRepo struct {
	mu    sync.Mutex
	roles map[string]struct{}
}

func newFakeRoleRepo(roles ...string) *fakeRoleRepo {
	f := &fakeRoleRepo{roles: make(map[string]struct{})}
	for _, r := range roles {
		f.roles[r] = struct{}{}
	}
	return f
}

func (f *fakeRoleRepo) Exists(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.roles[name]
	return ok, nil
}

func (f *fakeRoleRepo) Create(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[name] = struct{}{}
	return nil
}

type fakeOtpRepo struct {
	mu     sync.Mutex
	nextID int64
	codes  []*model.TwoFactorCode
}

func newFakeOtpRepo() *fakeOtpRepo {
	return &fakeOtpRepo{}
}

func (f *fakeOtpRepo) Create(_ context.Context, code *model.TwoFactorCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	code.ID = f.nextID
	cp := *code
	f.codes = append(f.codes, &cp)
	return nil
}

func (f *fakeOtpRepo) Consume(_ context.Context, userID, code string, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var match *model.TwoFactorCode
	for _, c := range f.codes {
		if c.UserID == userID && c.Code == code && !c.Used && c.ExpiresAt.After(now) {
			if match == nil || c.ExpiresAt.After(match.ExpiresAt) {
				match = c
			}
		}
	}
	if match == nil {
		return false, nil
	}
	match.Used = true
	return true, nil
}

func (f *fakeOtpRepo) all() []model.TwoFactorCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.TwoFactorCode, 0, len(f.codes))
	for _, c := range f.codes {
		out = append(out, *c)
	}
	return out
}

// capturingSender records delivered codes instead of sending them anywhere.
type capturingSender struct {
	mu    sync.Mutex
	codes []string
}

func (s *capturingSender) Send(_ context.Context, _ *model.User, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, code)
	return nil
}

func (s *capturingSender) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) == 0 {
		return ""
	}
	return s.codes[len(s.codes)-1]
}
