package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/gatil/internal/database/common"
	driver "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Connect accepts a driver DSN or a mysql:// URL. parseTime is forced on so
// DATE columns scan into time.Time.
func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn := strings.TrimPrefix(url, "mysql://")
	if strings.HasPrefix(url, "mysql://") {
		if at := strings.LastIndex(dsn, "@"); at > 0 {
			rest := dsn[at+1:]
			if slash := strings.Index(rest, "/"); slash > 0 && !strings.HasPrefix(rest, "tcp(") {
				dsn = fmt.Sprintf("%s@tcp(%s)%s", dsn[:at], rest[:slash], rest[slash:])
			}
		}
	}

	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse connection DSN: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", common.ErrConnect, err)
	}

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	if err := m.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConnect, err)
	}
	return nil
}

func (m *Adapter) Dialect() common.Dialect {
	return common.Dialect{Name: "mysql", Placeholder: squirrel.Question, Returning: false}
}

func (m *Adapter) Begin(ctx context.Context) (common.Tx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return common.NewSQLTx(tx, false), nil
}

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := m.qb.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query table names: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// DropAllTables turns off foreign key checks for the session; MySQL ignores
// CASCADE on DROP TABLE.
func (m *Adapter) DropAllTables(ctx context.Context) error {
	tables, err := m.GetAllTableNames(ctx)
	if err != nil {
		return err
	}

	if _, err := m.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return err
	}
	defer m.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")

	for _, table := range tables {
		query := fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)
		if _, err := m.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

func (m *Adapter) ExecuteScript(ctx context.Context, script string) error {
	return common.ExecScript(ctx, m.db, script)
}
