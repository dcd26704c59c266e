package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/internal/domain/repository"
)

var calendarSchema = Schema[entity.CalendarEvent]{
	Table:    "calendar_events",
	Columns:  []string{"title", "description", "start_at", "end_at", "is_all_day", "location", "color"},
	ReadOnly: []string{"updated_at"},
	OrderBy:  "start_at, id",
	Touch:    true,
	Values: func(e *entity.CalendarEvent) []any {
		return []any{e.Title, e.Description, e.StartAt, e.EndAt, e.IsAllDay, e.Location, e.Color}
	},
	Scan: func(row pgx.Row) (entity.CalendarEvent, error) {
		var e entity.CalendarEvent
		err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartAt, &e.EndAt,
			&e.IsAllDay, &e.Location, &e.Color, &e.UpdatedAt)
		return e, err
	},
}

type CalendarRepository struct {
	*ScopedStore[entity.CalendarEvent]
}

func NewCalendarRepository(pool *Pool) *CalendarRepository {
	return &CalendarRepository{ScopedStore: NewScopedStore(pool, calendarSchema)}
}

var _ repository.EventRepository = (*CalendarRepository)(nil)
