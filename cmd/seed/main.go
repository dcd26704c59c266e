package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/config"
	"github.com/oksasatya/records-api/internal/application"
	"github.com/oksasatya/records-api/internal/domain/entity"
	pginfra "github.com/oksasatya/records-api/internal/infrastructure/postgres"
	"github.com/oksasatya/records-api/pkg/helpers"
	"github.com/oksasatya/records-api/pkg/validation"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
	demoName     = "Demo User"
)

var demoEvents = []application.EventInput{
	{Title: "Team standup", StartAt: "2025-03-03T09:00:00Z", EndAt: "2025-03-03T09:15:00Z", Color: "#3b82f6"},
	{Title: "Dentist", StartAt: "2025-03-05T14:00:00Z", EndAt: "2025-03-05T15:00:00Z", Location: "Main St 12"},
	{Title: "Holiday", StartAt: "2025-03-10", EndAt: "2025-03-11", IsAllDay: true},
}

var demoTransactions = []struct {
	amount float64
	typ    string
	cat    string
	date   string
}{
	{2500, entity.TransactionIncome, "salary", "2025-03-01"},
	{45.9, entity.TransactionExpense, "groceries", "2025-03-02"},
	{120, entity.TransactionExpense, "utilities", "2025-03-04"},
}

type eventSeeder interface {
	List(ctx context.Context, owner int64) ([]entity.CalendarEvent, error)
	Create(ctx context.Context, owner int64, in *application.EventInput) (int64, error)
}

type transactionSeeder interface {
	List(ctx context.Context, owner int64) ([]entity.FinanceTransaction, error)
	Create(ctx context.Context, owner int64, in *application.TransactionInput) (int64, error)
}

// seedEvents adds the demo events unless owner already has events.
func seedEvents(ctx context.Context, svc eventSeeder, owner int64) (int, error) {
	existing, err := svc.List(ctx, owner)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for i, in := range demoEvents {
		in := in
		if _, err := svc.Create(ctx, owner, &in); err != nil {
			return i, err
		}
	}
	return len(demoEvents), nil
}

// seedTransactions adds the demo transactions unless owner already has some.
func seedTransactions(ctx context.Context, svc transactionSeeder, owner int64) (int, error) {
	existing, err := svc.List(ctx, owner)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for i, tx := range demoTransactions {
		amount := tx.amount
		if _, err := svc.Create(ctx, owner, &application.TransactionInput{
			Amount: &amount, Type: tx.typ, Category: tx.cat, TransactionDate: tx.date,
		}); err != nil {
			return i, err
		}
	}
	return len(demoTransactions), nil
}

// seed creates a demo account with a few events and transactions. The
// schema in db/schema.sql must already be applied. Re-running it leaves an
// already seeded account untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, pginfra.Options{
		DSN:            cfg.PostgresDSN(),
		MinConns:       1,
		MaxConns:       2,
		AcquireTimeout: cfg.DBAcquireTimeout,
		ConnectTimeout: cfg.DBConnectTimeout,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	userRepo := pginfra.NewUserRepository(pool)
	users := application.NewUserService(userRepo, helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL), nil, cfg.AppName, logger)

	u, err := users.Register(ctx, &application.RegisterInput{
		Email: demoEmail, Name: demoName, Password: demoPassword, ConfirmPassword: demoPassword,
	})
	var verrs *validation.Errors
	switch {
	case err == nil:
		logger.WithField("user_id", u.ID).Info("seeded demo user")
	case errors.As(err, &verrs) && verrs.Has("email"):
		u, err = userRepo.GetByEmail(ctx, demoEmail)
		if err != nil {
			logger.WithError(err).Fatal("failed to load existing demo user")
		}
		logger.WithField("user_id", u.ID).Info("demo user already exists")
	default:
		logger.WithError(err).Fatal("failed to seed demo user")
	}

	events, err := seedEvents(ctx, application.NewCalendarService(pginfra.NewCalendarRepository(pool)), u.ID)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed events")
	}

	finance := application.NewFinanceService(pginfra.NewFinanceRepository(pool))
	txs, err := seedTransactions(ctx, finance, u.ID)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed transactions")
	}

	summary, err := finance.Summary(ctx, u.ID)
	if err != nil {
		logger.WithError(err).Fatal("failed to read summary")
	}
	logger.WithFields(logrus.Fields{
		"email":              demoEmail,
		"password":           demoPassword,
		"events_added":       events,
		"transactions_added": txs,
		"transactions":       summary.TotalTransactions,
		"balance":            summary.Balance,
	}).Info("seed complete")
}
