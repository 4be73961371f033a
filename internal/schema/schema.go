// Package schema owns the shelter DDL and the two reset strategies: dropping
// and recreating every table, or deleting every row inside the seeding
// transaction.
package schema

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/Rana718/gatil/internal/database"
	"github.com/fatih/color"
)

//go:embed sql/*.sql
var ddlFiles embed.FS

// DDL returns the script at path, or the embedded script for provider when
// path is empty.
func DDL(provider, path string) (string, error) {
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read schema file %s: %w", path, err)
		}
		return string(content), nil
	}

	content, err := ddlFiles.ReadFile("sql/" + provider + ".sql")
	if err != nil {
		return "", fmt.Errorf("no embedded schema for provider %s: %w", provider, err)
	}
	return string(content), nil
}

// Recreate drops every table of the target database and runs ddl. Each
// statement is executed on its own, outside the seeding transaction.
func Recreate(ctx context.Context, adapter database.DatabaseAdapter, ddl string) error {
	color.Cyan("🗑️  Dropping existing tables...")
	if err := adapter.DropAllTables(ctx); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	color.Green("✅ Database cleaned")

	color.Cyan("📜 Applying schema...")
	if err := adapter.ExecuteScript(ctx, ddl); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	color.Green("✅ Schema applied")
	return nil
}

// Wipe deletes every row of WipeOrder inside tx.
func Wipe(ctx context.Context, tx database.Queryer, dialect database.Dialect) error {
	color.Cyan("🧹 Clearing existing rows...")
	qb := dialect.Builder()
	for _, table := range WipeOrder {
		query, args, err := qb.Delete(table).ToSql()
		if err != nil {
			return err
		}
		if err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		color.White("  table %s cleared", table)
	}
	return nil
}
