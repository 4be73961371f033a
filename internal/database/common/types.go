package common

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
)

// ErrConnect marks a failure to reach the database. No transaction is open
// when it is returned, so callers exit without rolling anything back.
var ErrConnect = errors.New("database connection failed")

// Row is satisfied by both pgx.Rows and *sql.Rows.
type Row interface {
	Scan(dest ...any) error
}

// Queryer is the statement surface shared by transactions of every provider.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...any) error
	// InsertReturningID runs an INSERT and returns the generated id, either
	// through RETURNING or through the driver's last-insert id.
	InsertReturningID(ctx context.Context, query string, args ...any) (int64, error)
	// Query calls scan once per result row.
	Query(ctx context.Context, query string, args []any, scan func(Row) error) error
}

type Tx interface {
	Queryer
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Dialect captures the statement differences the seeder has to care about.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
	Returning   bool
}

// Builder returns a squirrel builder using the dialect's placeholders.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder)
}
