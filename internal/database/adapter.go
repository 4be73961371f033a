package database

import (
	"context"

	"github.com/Rana718/gatil/internal/database/common"
)

type (
	Row     = common.Row
	Queryer = common.Queryer
	Tx      = common.Tx
	Dialect = common.Dialect
)

var ErrConnect = common.ErrConnect

type DatabaseAdapter interface {
	Connect(ctx context.Context, dsn string) error
	Close() error
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (common.Tx, error)
	Dialect() common.Dialect

	// Schema operations
	GetAllTableNames(ctx context.Context) ([]string, error)
	DropAllTables(ctx context.Context) error
	ExecuteScript(ctx context.Context, script string) error
}
