package router

import (
	"github.com/oksasatya/records-api/internal/application"
	"github.com/oksasatya/records-api/internal/container"
	pginfra "github.com/oksasatya/records-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/records-api/internal/interface/http"
	"github.com/oksasatya/records-api/internal/interface/middleware"
	"github.com/oksasatya/records-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from c and adds
// their modules to r. Call it once during startup.
func InitModules(r *Registry, c *container.Container) {
	auth := middleware.Auth(c.JWT)

	var mail application.EmailPublisher
	if c.Mail != nil {
		mail = c.Mail
	}
	userSvc := application.NewUserService(pginfra.NewUserRepository(c.Pool), c.JWT, mail, c.Config.AppName, c.Logger)
	calendarSvc := application.NewCalendarService(pginfra.NewCalendarRepository(c.Pool))
	financeSvc := application.NewFinanceService(pginfra.NewFinanceRepository(c.Pool))

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, c.Logger), auth, c.Redis))
	r.Add(modules.NewCalendarModule(handlers.NewCalendarHandler(calendarSvc, c.Logger), auth, c.Redis))
	r.Add(modules.NewFinanceModule(handlers.NewFinanceHandler(financeSvc, c.Logger), auth, c.Redis))

	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(c.Pool, c.Logger)))
	if c.Config.IsDevelopment() {
		r.AddRoot(modules.NewDebugModule(c.Pool))
	}
}
