package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/mail"
	"time"

	"calendo/internal/app/notify"
	"calendo/internal/app/ratelimit"
	"calendo/internal/common"
	"calendo/internal/common/security"
	"calendo/internal/domain/model"
	"calendo/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	otpRepo  repository.TwoFactorCodeRepository
	sender   notify.Sender
	limiter  ratelimit.Limiter
	now      func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	otpRepo repository.TwoFactorCodeRepository,
	sender notify.Sender,
	limiter ratelimit.Limiter,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		otpRepo:  otpRepo,
		sender:   sender,
		limiter:  limiter,
		now:      time.Now,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	NeedOtp bool `json:"needOtp"`
}

type VerifyOtpRequest struct {
	Username string `json:"username"`
	Otp      string `json:"otp"`
}

type VerifyOtpResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Register creates a credential record. The password policy mirrors the
// account rules: minimum length 6, at least one digit, nothing else required.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	var errs common.ValidationErrors
	if req.Username == "" {
		errs = append(errs, "Username is required.")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, "Email is invalid.")
	}
	errs = append(errs, security.ValidatePasswordPolicy(req.Password)...)
	if len(errs) > 0 {
		return nil, errs
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	exists, err := s.roleRepo.Exists(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to check role: %w", err)
	}
	if !exists {
		return nil, common.ErrRoleNotFound
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Active:         true,
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on duplicate username/email
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.HashedPassword = ""
	return user, nil
}

// Login is the first step of the two-factor flow. On success a fresh
// challenge is persisted and handed to the delivery channel; the code itself
// never appears in the response. Earlier unused challenges stay valid.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := s.allow(ctx, "login:"+req.Username); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidUser
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Checked before the password so a disabled account never reveals
	// whether the password was right.
	if !user.Active {
		return nil, common.ErrAccountDisabled
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrWrongPassword
	}

	code, err := generateOtpCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}

	challenge := &model.TwoFactorCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.now().Add(model.OtpTTL),
		Used:      false,
	}
	if err := s.otpRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to store otp challenge: %w", err)
	}

	if err := s.sender.Send(ctx, user, code); err != nil {
		return nil, fmt.Errorf("failed to deliver otp: %w", err)
	}

	return &LoginResponse{NeedOtp: true}, nil
}

// VerifyOtp is the second step. Consumption is a single conditional update,
// so a challenge verifies at most once even under concurrent attempts.
func (s *AuthService) VerifyOtp(ctx context.Context, req VerifyOtpRequest) (*VerifyOtpResponse, error) {
	if err := s.allow(ctx, "verify:"+req.Username); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	claimed, err := s.otpRepo.Consume(ctx, user.ID, req.Otp, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to consume otp: %w", err)
	}
	if !claimed {
		return nil, common.ErrOtpInvalidOrExpired
	}

	if user.Role == "" {
		// A verified user without a role is a configuration fault, not a
		// client error.
		log.Printf("ERROR: user %s has no assigned role; cannot issue token", user.Username)
		return nil, common.ErrInternalServer
	}

	token, err := security.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &VerifyOtpResponse{Token: token, Role: user.Role}, nil
}

func (s *AuthService) allow(ctx context.Context, key string) error {
	if s.limiter == nil {
		return nil
	}
	ok, err := s.limiter.Allow(ctx, key)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	if !ok {
		return common.ErrTooManyRequests
	}
	return nil
}

// generateOtpCode draws a uniform 6-digit code from [100000, 999999].
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
