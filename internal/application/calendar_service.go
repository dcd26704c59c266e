package application

import (
	"strings"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
	"github.com/oksasatya/records-api/pkg/validation"
)

// EventInput is the body of create and update event calls. Date-times are
// ISO 8601 strings.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartAt     string `json:"start_at" validate:"required"`
	EndAt       string `json:"end_at" validate:"required"`
	IsAllDay    bool   `json:"is_all_day"`
	Location    string `json:"location"`
	Color       string `json:"color"`
}

var eventMessages = validation.Messages{
	"title":    "Title is required",
	"start_at": "Start time is required",
	"end_at":   "End time is required",
}

func (in *EventInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.StartAt = strings.TrimSpace(in.StartAt)
	in.EndAt = strings.TrimSpace(in.EndAt)
	in.Location = strings.TrimSpace(in.Location)
	in.Color = strings.TrimSpace(in.Color)
}

func (in *EventInput) Build() (*entity.CalendarEvent, error) {
	if err := validation.Struct(in, eventMessages).Err(); err != nil {
		return nil, err
	}
	start, err := validation.ParseISO8601(in.StartAt)
	if err != nil {
		return nil, invalidDatetime()
	}
	end, err := validation.ParseISO8601(in.EndAt)
	if err != nil {
		return nil, invalidDatetime()
	}
	return &entity.CalendarEvent{
		Title:       in.Title,
		Description: in.Description,
		StartAt:     start,
		EndAt:       end,
		IsAllDay:    in.IsAllDay,
		Location:    in.Location,
		Color:       in.Color,
	}, nil
}

func invalidDatetime() error {
	return validation.Field("datetime", "Invalid date format (use ISO 8601)")
}

type CalendarService struct {
	Resource[entity.CalendarEvent, *EventInput]
}

func NewCalendarService(repo repository.EventRepository) *CalendarService {
	return &CalendarService{Resource: NewResource[entity.CalendarEvent, *EventInput](repo)}
}
