// Package report turns a finished seeding run into console output, a YAML
// document and a Prometheus textfile.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Rana718/gatil/internal/schema"
	"github.com/Rana718/gatil/internal/seeder"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type TableCount struct {
	Table    string `yaml:"table"`
	Inserted int    `yaml:"inserted"`
	Updated  int    `yaml:"updated,omitempty"`
}

type StepTiming struct {
	Name    string  `yaml:"name"`
	Rows    int     `yaml:"rows"`
	Seconds float64 `yaml:"seconds"`
}

type Report struct {
	RunID     string       `yaml:"run_id"`
	Profile   string       `yaml:"profile"`
	Seed      uint64       `yaml:"seed"`
	Dialect   string       `yaml:"dialect"`
	StartedAt time.Time    `yaml:"started_at"`
	Seconds   float64      `yaml:"seconds"`
	TotalRows int          `yaml:"total_rows"`
	Tables    []TableCount `yaml:"tables"`
	Steps     []StepTiming `yaml:"steps"`
}

// New builds the report of summary. Tables are listed parents first.
func New(summary *seeder.Summary) *Report {
	r := &Report{
		RunID:     uuid.NewString(),
		Profile:   summary.Profile,
		Seed:      summary.Seed,
		Dialect:   summary.Dialect,
		StartedAt: summary.Started.UTC(),
		Seconds:   summary.Duration.Seconds(),
		TotalRows: summary.State.TotalInserted(),
	}

	for i := len(schema.WipeOrder) - 1; i >= 0; i-- {
		table := schema.WipeOrder[i]
		r.Tables = append(r.Tables, TableCount{
			Table:    table,
			Inserted: summary.State.Inserted[table],
			Updated:  summary.State.Updated[table],
		})
	}
	for _, step := range summary.Steps {
		r.Steps = append(r.Steps, StepTiming{
			Name:    step.Name,
			Rows:    step.Rows,
			Seconds: step.Duration.Seconds(),
		})
	}
	return r
}

func (r *Report) Print() {
	fmt.Println()
	color.Cyan("📊 Seed summary (run %s)", r.RunID)
	for _, t := range r.Tables {
		if t.Updated > 0 {
			fmt.Printf("  %-20s %6d rows (%d updated)\n", t.Table, t.Inserted, t.Updated)
			continue
		}
		fmt.Printf("  %-20s %6d rows\n", t.Table, t.Inserted)
	}
	color.Green("  %d rows in %.2fs (profile %s, seed %d)", r.TotalRows, r.Seconds, r.Profile, r.Seed)
}

// WriteYAML writes the report to path, creating parent directories.
func (r *Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
