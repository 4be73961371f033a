package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rana718/gatil/internal/schema"
	"github.com/Rana718/gatil/internal/seeder"
	"gopkg.in/yaml.v3"
)

func testSummary() *seeder.Summary {
	state := seeder.NewState()
	state.Inserted[schema.Endereco] = 200
	state.Inserted[schema.Pessoa] = 100
	state.Inserted[schema.LarTemporario] = 15
	state.Updated[schema.LarTemporario] = 15

	return &seeder.Summary{
		Profile:  "small",
		Seed:     42,
		Dialect:  "sqlite",
		Started:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration: 1500 * time.Millisecond,
		Steps: []seeder.StepResult{
			{Name: "addresses", Rows: 200, Duration: time.Second},
			{Name: "people", Rows: 100, Duration: 500 * time.Millisecond},
		},
		State: state,
	}
}

func TestNew(t *testing.T) {
	r := New(testSummary())

	if r.RunID == "" {
		t.Error("RunID is empty")
	}
	if r.TotalRows != 315 {
		t.Errorf("TotalRows = %d, want 315", r.TotalRows)
	}
	if len(r.Tables) != len(schema.WipeOrder) {
		t.Fatalf("Tables has %d entries, want %d", len(r.Tables), len(schema.WipeOrder))
	}
	if r.Tables[0].Table != schema.Endereco {
		t.Errorf("first table = %s, want %s", r.Tables[0].Table, schema.Endereco)
	}
	if r.Seconds != 1.5 {
		t.Errorf("Seconds = %v, want 1.5", r.Seconds)
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.yaml")
	r := New(testSummary())
	if err := r.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}
	if got.RunID != r.RunID || got.Seed != 42 || got.Profile != "small" {
		t.Errorf("decoded report = %+v", got)
	}
	if len(got.Steps) != 2 || got.Steps[1].Name != "people" {
		t.Errorf("decoded steps = %+v", got.Steps)
	}
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gatil.prom")
	if err := New(testSummary()).WriteMetrics(path); err != nil {
		t.Fatalf("WriteMetrics() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		`gatil_seed_rows{table="pessoa"} 100`,
		`gatil_seed_rows{table="endereco"} 200`,
		`gatil_seed_step_duration_seconds{step="addresses"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics missing %q:\n%s", want, text)
		}
	}
}
