package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqNumericOutOfRange   = "22003"
)

// PostgresURI builds the connection string used by both the driver and the migrator.
func PostgresURI(host, port, user, password, name string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
}

// NewDB opens a postgres pool and fails unless the server answers a ping within five seconds.
func NewDB(URI string, maxOpenConns, maxIdleConns int, maxIdleTime time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", URI)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach database: %w", err)
	}

	return db, nil
}

// MigrateUp applies every pending migration. source is a golang-migrate source URL
// such as "file://migrations".
func MigrateUp(source, URI string) (*migrate.Migrate, error) {
	m, err := migrate.New(source, URI)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	return m, nil
}

// UniqueViolation reports whether err is a unique constraint violation on the named constraint.
func UniqueViolation(err error, constraint string) bool {
	return pqErrorIs(err, pqUniqueViolation, constraint)
}

// ForeignKeyViolation reports whether err is a foreign key violation on the named constraint.
func ForeignKeyViolation(err error, constraint string) bool {
	return pqErrorIs(err, pqForeignKeyViolation, constraint)
}

// NumericOutOfRange reports whether a value did not fit its numeric column.
func NumericOutOfRange(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqNumericOutOfRange
}

func pqErrorIs(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code && pqErr.Constraint == constraint
	}

	return false
}
