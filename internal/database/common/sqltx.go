package common

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLTx adapts a database/sql transaction to Tx. When returning is false the
// generated id is read with LastInsertId instead of a RETURNING clause.
type SQLTx struct {
	tx        *sql.Tx
	returning bool
}

func NewSQLTx(tx *sql.Tx, returning bool) *SQLTx {
	return &SQLTx{tx: tx, returning: returning}
}

func (t *SQLTx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

func (t *SQLTx) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	if t.returning {
		var id int64
		if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

func (t *SQLTx) Query(ctx context.Context, query string, args []any, scan func(Row) error) error {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (t *SQLTx) Commit(ctx context.Context) error {
	return t.tx.Commit()
}

func (t *SQLTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback()
}

// ExecScript runs every statement of script on db, one at a time.
func ExecScript(ctx context.Context, db *sql.DB, script string) error {
	for i, stmt := range ParseSQLStatements(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement %d: %w", i+1, err)
		}
	}
	return nil
}
