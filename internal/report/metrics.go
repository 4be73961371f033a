package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry exposes the run as gauges, for node_exporter's textfile collector.
func (r *Report) Registry() *prometheus.Registry {
	rows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gatil_seed_rows",
		Help: "Rows inserted by the last seeding run, per table.",
	}, []string{"table"})
	steps := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gatil_seed_step_duration_seconds",
		Help: "Wall time of each step of the last seeding run.",
	}, []string{"step"})

	for _, t := range r.Tables {
		rows.WithLabelValues(t.Table).Set(float64(t.Inserted))
	}
	for _, s := range r.Steps {
		steps.WithLabelValues(s.Name).Set(s.Seconds)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(rows, steps)
	return reg
}

func (r *Report) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry()); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
