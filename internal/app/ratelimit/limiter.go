// Package ratelimit implements a fixed-window attempt limiter keyed by an
// arbitrary string, used to slow credential and OTP guessing.
package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether another attempt is allowed for key within the
// current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Config holds the shared window parameters.
type Config struct {
	Limit  int
	Window time.Duration
}
