package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/records-api/internal/domain/repository"
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// classDataException prefixes every SQLSTATE raised for bad values, such as
// 22003 numeric out of range or 22021 invalid byte sequence.
const classDataException = "22"

// translate maps driver errors onto the repository error kinds.
func translate(table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrPoolExhausted) ||
		errors.Is(err, repository.ErrConnection) {
		return err
	}
	var conflict *repository.ConflictError
	var dataErr *repository.DataError
	if errors.As(err, &conflict) || errors.As(err, &dataErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation:
			field := pgErr.ColumnName
			if field == "" {
				field = columnFromConstraint(table, pgErr.ConstraintName)
			}
			return &repository.ConflictError{
				Table:      table,
				Constraint: pgErr.ConstraintName,
				Field:      field,
				Err:        err,
			}
		}
		if strings.HasPrefix(pgErr.Code, classDataException) {
			return &repository.DataError{Table: table, Field: pgErr.ColumnName, Code: pgErr.Code, Err: err}
		}
	}
	return fmt.Errorf("%s: %w", table, err)
}

// columnFromConstraint recovers the column from Postgres' default constraint
// names, e.g. users_email_key -> email, calendar_events_user_id_fkey -> user_id.
func columnFromConstraint(table, constraint string) string {
	if constraint == "" {
		return ""
	}
	name := constraint
	switch {
	case strings.HasPrefix(name, table+"_"):
		name = strings.TrimPrefix(name, table+"_")
	case strings.HasPrefix(name, "unique_"+table+"_"):
		return strings.TrimPrefix(name, "unique_"+table+"_")
	default:
		return ""
	}
	for _, suffix := range []string{"_fkey", "_pkey", "_key", "_check"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return ""
}
