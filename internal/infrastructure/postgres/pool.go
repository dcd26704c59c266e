package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/internal/domain/repository"
)

// Options configures the connection pool. Everything comes from config.Config.
type Options struct {
	DSN             string
	MinConns        int32
	MaxConns        int32
	MaxConnLifetime time.Duration
	// AcquireTimeout bounds how long a request waits for a free connection.
	AcquireTimeout time.Duration
	ConnectTimeout time.Duration
	// TraceSQL logs every statement at debug level.
	TraceSQL bool
}

// Querier is what repositories run statements against: a pooled connection
// or an open transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is a borrowed connection that can also open a transaction.
type Conn interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Acquirer hands out connections together with the func that gives them back.
type Acquirer interface {
	Acquire(ctx context.Context) (Conn, func(), error)
}

type pgxAcquirer struct {
	pool *pgxpool.Pool
}

func (a pgxAcquirer) Acquire(ctx context.Context) (Conn, func(), error) {
	c, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, c.Release, nil
}

// Pool is the process-wide connection pool. Build it once at startup and
// pass it to the repositories.
type Pool struct {
	src            Acquirer
	raw            *pgxpool.Pool
	acquireTimeout time.Duration
	logger         *logrus.Logger
}

// NewPool creates the pgx pool and verifies the database answers.
func NewPool(ctx context.Context, opts Options, logger *logrus.Logger) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = opts.MaxConns
	cfg.MinConns = opts.MinConns
	cfg.MaxConnLifetime = opts.MaxConnLifetime
	if opts.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}
	if opts.TraceSQL && logger != nil {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   tracelog.LoggerFunc(logrusTrace(logger)),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	raw, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrConnection, err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := raw.Ping(pingCtx); err != nil {
		raw.Close()
		return nil, fmt.Errorf("%w: %v", repository.ErrConnection, err)
	}

	p := New(pgxAcquirer{pool: raw}, opts.AcquireTimeout, logger)
	p.raw = raw
	return p, nil
}

// New wraps an arbitrary Acquirer.
func New(src Acquirer, acquireTimeout time.Duration, logger *logrus.Logger) *Pool {
	return &Pool{src: src, acquireTimeout: acquireTimeout, logger: logger}
}

// Close releases every pooled connection.
func (p *Pool) Close() {
	if p.raw != nil {
		p.raw.Close()
	}
}

// Stats reports pool occupancy. It is empty for pools not backed by pgxpool.
func (p *Pool) Stats() map[string]int64 {
	if p.raw == nil {
		return map[string]int64{}
	}
	s := p.raw.Stat()
	return map[string]int64{
		"acquired":         int64(s.AcquiredConns()),
		"idle":             int64(s.IdleConns()),
		"total":            int64(s.TotalConns()),
		"max":              int64(s.MaxConns()),
		"acquire_count":    s.AcquireCount(),
		"empty_acquires":   s.EmptyAcquireCount(),
		"canceled_acquire": s.CanceledAcquireCount(),
	}
}

// Acquire borrows a connection, waiting at most the acquire timeout.
// The returned release func must be called exactly once.
func (p *Pool) Acquire(ctx context.Context) (Conn, func(), error) {
	actx := ctx
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}
	conn, release, err := p.src.Acquire(actx)
	if err == nil {
		return conn, release, nil
	}

	var connectErr *pgconn.ConnectError
	switch {
	case ctx.Err() != nil:
		return nil, nil, fmt.Errorf("acquire connection: %w", ctx.Err())
	case actx.Err() != nil || errors.Is(err, context.DeadlineExceeded):
		return nil, nil, fmt.Errorf("%w: no connection within %s", repository.ErrPoolExhausted, p.acquireTimeout)
	case errors.As(err, &connectErr):
		return nil, nil, fmt.Errorf("%w: %v", repository.ErrConnection, err)
	default:
		return nil, nil, fmt.Errorf("acquire connection: %w", err)
	}
}

// WithConn runs fn on a borrowed connection and always gives it back.
func (p *Pool) WithConn(ctx context.Context, fn func(q Querier) error) error {
	conn, release, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(conn)
}

// WithTx runs fn inside a single transaction on a borrowed connection.
// It commits when fn returns nil and rolls back on error or panic.
func (p *Pool) WithTx(ctx context.Context, fn func(q Querier) error) (err error) {
	conn, release, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			p.rollback(ctx, tx)
			panic(r)
		}
		if err != nil {
			p.rollback(ctx, tx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = fmt.Errorf("commit: %w", cerr)
		}
	}()

	return fn(tx)
}

func (p *Pool) rollback(ctx context.Context, tx pgx.Tx) {
	// the request may already be cancelled; the rollback must still reach the server
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) && p.logger != nil {
		p.logger.WithError(err).Warn("rollback failed")
	}
}

// Ping runs a trivial statement through the pool.
func (p *Pool) Ping(ctx context.Context) (string, error) {
	var val string
	err := p.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, `SELECT 'OK'`).Scan(&val)
	})
	return val, err
}

func logrusTrace(logger *logrus.Logger) func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	return func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		entry := logger.WithFields(logrus.Fields(data))
		switch level {
		case tracelog.LogLevelError:
			entry.Error(msg)
		case tracelog.LogLevelWarn:
			entry.Warn(msg)
		case tracelog.LogLevelInfo:
			entry.Info(msg)
		default:
			entry.Debug(msg)
		}
	}
}
