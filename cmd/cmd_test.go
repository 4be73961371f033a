package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rana718/gatil/internal/config"
	"github.com/Rana718/gatil/internal/database"
	"github.com/spf13/pflag"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	seedCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name != "count" {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	seedCounts = nil
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func useSQLite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("GATIL_DATABASE_PROVIDER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(dir, "shelter.db"))
	return dir
}

func TestSeedCommand(t *testing.T) {
	dir := useSQLite(t)
	reportPath := filepath.Join(dir, "out", "seed.yaml")
	metricsPath := filepath.Join(dir, "gatil.prom")

	err := execute(t, "seed",
		"--profile", "small",
		"--reset-schema",
		"--seed", "42",
		"--count", "gato=20",
		"--report", reportPath,
		"--metrics", metricsPath,
	)
	if err != nil {
		t.Fatalf("gatil seed error = %v", err)
	}

	report, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	for _, want := range []string{"profile: small", "seed: 42", "dialect: sqlite"} {
		if !strings.Contains(string(report), want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	metrics, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics not written: %v", err)
	}
	if !strings.Contains(string(metrics), `gatil_seed_rows{table="gato"} 20`) {
		t.Errorf("metrics do not reflect the gato override:\n%s", metrics)
	}
}

func TestSeedCommandRejectsBothResets(t *testing.T) {
	useSQLite(t)

	err := execute(t, "seed", "--wipe", "--reset-schema")
	if !errors.Is(err, config.ErrConflictingReset) {
		t.Fatalf("gatil seed --wipe --reset-schema error = %v, want ErrConflictingReset", err)
	}
}

func TestPlanCommand(t *testing.T) {
	if err := execute(t, "plan"); err != nil {
		t.Fatalf("gatil plan error = %v", err)
	}
}

type unreachableAdapter struct {
	database.DatabaseAdapter
	connected bool
	closed    bool
}

func (a *unreachableAdapter) Connect(context.Context, string) error {
	a.connected = true
	return nil
}

func (a *unreachableAdapter) Ping(context.Context) error {
	return database.ErrConnect
}

func (a *unreachableAdapter) Close() error {
	a.closed = true
	return nil
}

func TestOpenPingsAfterConnect(t *testing.T) {
	adapter := &unreachableAdapter{}

	err := open(context.Background(), adapter, "postgres://localhost/shelter")
	if !errors.Is(err, database.ErrConnect) {
		t.Fatalf("open() error = %v, want ErrConnect", err)
	}
	if !adapter.connected || !adapter.closed {
		t.Errorf("connected = %v, closed = %v, want both true", adapter.connected, adapter.closed)
	}
}

func TestOpenSQLite(t *testing.T) {
	adapter := database.NewAdapter("sqlite")
	if err := open(context.Background(), adapter, filepath.Join(t.TempDir(), "shelter.db")); err != nil {
		t.Fatalf("open() error = %v", err)
	}
	adapter.Close()
}
