package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/internal/application"
	"github.com/oksasatya/records-api/internal/domain/entity"
)

type CalendarHandler struct {
	crudHandler[entity.CalendarEvent, *application.EventInput]
}

func NewCalendarHandler(svc *application.CalendarService, logger *logrus.Logger) *CalendarHandler {
	return &CalendarHandler{crudHandler[entity.CalendarEvent, *application.EventInput]{
		svc:      svc,
		newInput: func() *application.EventInput { return &application.EventInput{} },
		msgs: crudMessages{
			created: "Event created successfully",
			updated: "Event updated successfully",
			deleted: "Event deleted successfully",
		},
		renderer: renderer{logger: logger, style: fieldErrors, notFound: "Event not found or access denied"},
	}}
}
