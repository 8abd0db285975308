package model

import (
	"time"
)

type Event struct {
	ID         int       `json:"id"`
	CalendarID int       `json:"calendar_id"`
	Calendar   *Calendar `json:"calendar,omitempty"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Hidden     bool      `json:"hidden"`
}
