package entity

import "time"

// CalendarEvent belongs to exactly one user; UserID never leaves the service.
type CalendarEvent struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	IsAllDay    bool      `json:"is_all_day"`
	Location    string    `json:"location"`
	Color       string    `json:"color"`
	UpdatedAt   time.Time `json:"-"`
}
