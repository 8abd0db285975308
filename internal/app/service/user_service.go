package service

import (
	"context"
	"fmt"
	"time"

	"calendo/internal/common"
	"calendo/internal/domain/model"
	"calendo/internal/domain/repository"
)

// Admin lock is effectively permanent; unlock clears it.
const adminLockDuration = 100 * 365 * 24 * time.Hour

type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo, now: time.Now}
}

// UserView is the listing shape consumed by admin clients.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
	IsLocked bool   `json:"is_locked"`
	Role     string `json:"role"`
}

func viewOf(u *model.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Active:   u.Active,
		IsLocked: u.Locked(),
		Role:     u.Role,
	}
}

func (s *UserService) List(ctx context.Context) ([]UserView, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, viewOf(u))
	}
	return views, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := viewOf(user)
	return &v, nil
}

func (s *UserService) ChangeRole(ctx context.Context, userID, role string) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	exists, err := s.roleRepo.Exists(ctx, role)
	if err != nil {
		return fmt.Errorf("failed to check role: %w", err)
	}
	if !exists {
		return common.ErrRoleNotFound
	}
	return s.userRepo.SetRole(ctx, userID, role)
}

func (s *UserService) SetActive(ctx context.Context, userID string, active bool) error {
	return s.userRepo.SetActive(ctx, userID, active)
}

func (s *UserService) Lock(ctx context.Context, userID string) error {
	until := s.now().Add(adminLockDuration)
	return s.userRepo.SetLockedUntil(ctx, userID, &until)
}

func (s *UserService) Unlock(ctx context.Context, userID string) error {
	return s.userRepo.SetLockedUntil(ctx, userID, nil)
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.userRepo.Delete(ctx, userID)
}
