package model

import (
	"time"
)

type Reminder struct {
	ID       int       `json:"id"`
	EventID  int       `json:"event_id"`
	Event    *Event    `json:"event,omitempty"`
	RemindAt time.Time `json:"remind_at"`
	Note     *string   `json:"note,omitempty"`
	Hidden   bool      `json:"hidden"`
}
