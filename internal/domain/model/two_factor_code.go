package model

import (
	"time"
)

// OtpTTL is how long an issued code stays verifiable.
const OtpTTL = 5 * time.Minute

// TwoFactorCode is one issued OTP challenge awaiting verification.
// Codes are never deleted; expiry alone makes them inert.
type TwoFactorCode struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Code      string    `json:"code"` // 6 digits, zero-padded
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}
