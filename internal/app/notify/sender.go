// Package notify delivers one-time codes to users over an out-of-band channel.
package notify

import (
	"context"
	"log"

	"calendo/internal/domain/model"
)

// Sender delivers a one-time code to the user. Implementations own the
// transport (email, SMS); the auth flow never sees the code again after
// handing it off.
type Sender interface {
	Send(ctx context.Context, user *model.User, code string) error
}

// LogSender writes codes to the process log. Development transport only;
// production deployments must inject a real channel.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, user *model.User, code string) error {
	log.Printf("OTP for %s: %s", user.Username, code)
	return nil
}
