package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	ErrConnection          = errors.New("database connection failed")
	ErrForeignKeyViolation = errors.New("referenced row does not exist")
	ErrCheckViolation      = errors.New("check constraint violated")
)

func pickExecutor(db *sql.DB, exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return db
}

// ClassifyError maps driver specific failures onto the repository sentinels.
// The original error stays in the chain.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConnection) || errors.Is(err, ErrForeignKeyViolation) || errors.Is(err, ErrCheckViolation) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23503": // foreign_key_violation
			return fmt.Errorf("%w (%s): %w", ErrForeignKeyViolation, pqErr.Constraint, err)
		case pqErr.Code == "23514": // check_violation
			return fmt.Errorf("%w (%s): %w", ErrCheckViolation, pqErr.Constraint, err)
		case pqErr.Code.Class() == "08": // connection_exception
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %w", ErrCheckViolation, err)
		case sqliteErr.Code == sqlite3.ErrCantOpen, sqliteErr.Code == sqlite3.ErrIoErr:
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return err
}
