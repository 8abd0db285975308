package service

import (
	"context"
	"errors"
	"fmt"

	"calendo/internal/common"
	"calendo/internal/common/security"
	"calendo/internal/domain/model"
	"calendo/internal/domain/repository"

	"github.com/google/uuid"
)

// SeedAdmin describes the bootstrap administrator account.
type SeedAdmin struct {
	Username string
	Email    string
	Password string
}

// EnsureSeedData provisions the fixed role set and the bootstrap admin.
// Idempotent: every write is guarded by an existence check, so calling it on
// every process start is safe.
func EnsureSeedData(ctx context.Context, userRepo repository.UserRepository, roleRepo repository.RoleRepository, admin SeedAdmin) error {
	for _, role := range model.SeedRoles {
		exists, err := roleRepo.Exists(ctx, role)
		if err != nil {
			return fmt.Errorf("seed: check role %s: %w", role, err)
		}
		if exists {
			continue
		}
		if err := roleRepo.Create(ctx, role); err != nil {
			return fmt.Errorf("seed: create role %s: %w", role, err)
		}
	}

	_, err := userRepo.FindByEmail(ctx, admin.Email)
	if err == nil {
		return nil // admin already bootstrapped
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("seed: look up admin: %w", err)
	}

	hashed, err := security.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	user := &model.User{
		ID:             uuid.NewString(),
		Username:       admin.Username,
		Email:          admin.Email,
		HashedPassword: hashed,
		Active:         true,
		Role:           model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}
	return nil
}
