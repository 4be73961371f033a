package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/gatil/internal/config"
	"github.com/Rana718/gatil/internal/database"
	"github.com/Rana718/gatil/internal/report"
	"github.com/Rana718/gatil/internal/schema"
	"github.com/Rana718/gatil/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCounts map[string]int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with fake shelter data",
	Long: `
Populate every table of the shelter schema in one transaction.

Existing rows can be removed first, either by deleting them inside the
seeding transaction (--wipe) or by dropping and recreating every table
(--reset-schema). The two are mutually exclusive.

Examples:
  gatil seed --profile small
  gatil seed --wipe --count gato=100 --count adocao=40
  gatil seed --reset-schema --seed 42 --report out/seed.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("count") {
			if cfg.Seed.Counts == nil {
				cfg.Seed.Counts = make(map[string]int)
			}
			for table, n := range seedCounts {
				cfg.Seed.Counts[table] = n
			}
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		profile, err := seeder.ProfileByName(cfg.Seed.Profile)
		if err != nil {
			return err
		}
		if profile, err = profile.WithCounts(cfg.Seed.Counts); err != nil {
			return err
		}

		ctx := cmd.Context()
		adapter, err := connect(cmd, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		if cfg.Seed.ResetSchema {
			ddl, err := schema.DDL(cfg.ProviderName(), cfg.SchemaPath)
			if err != nil {
				return err
			}
			if err := schema.Recreate(ctx, adapter, ddl); err != nil {
				return err
			}
		}

		s, err := seeder.NewSeeder(adapter, seeder.Options{
			Profile: profile,
			Seed:    cfg.Seed.Seed,
			Wipe:    cfg.Seed.Wipe,
		})
		if err != nil {
			return err
		}

		summary, err := s.Run(ctx)
		if err != nil {
			return err
		}

		rep := report.New(summary)
		rep.Print()
		if cfg.ReportPath != "" {
			if err := rep.WriteYAML(cfg.ReportPath); err != nil {
				return err
			}
			color.Cyan("📝 Report written to %s", cfg.ReportPath)
		}
		if cfg.MetricsPath != "" {
			if err := rep.WriteMetrics(cfg.MetricsPath); err != nil {
				return err
			}
			color.Cyan("📈 Metrics written to %s", cfg.MetricsPath)
		}
		return nil
	},
}

// connect opens the adapter for cfg. A failure here leaves nothing to roll
// back.
func connect(cmd *cobra.Command, cfg *config.Config) (database.DatabaseAdapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	color.Cyan("🔌 Connecting to %s (%s)", config.RedactedURL(dbURL), cfg.ProviderName())
	adapter := database.NewAdapter(cfg.Database.Provider)
	if err := open(cmd.Context(), adapter, dbURL); err != nil {
		return nil, err
	}
	return adapter, nil
}

// open connects adapter and checks the server answers before any
// transaction starts.
func open(ctx context.Context, adapter database.DatabaseAdapter, dsn string) error {
	if err := adapter.Connect(ctx, dsn); err != nil {
		return err
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)

	flags := seedCmd.Flags()
	flags.String("profile", "large", "Volume profile (small or large)")
	flags.StringToIntVar(&seedCounts, "count", nil, "Override a table count, e.g. --count gato=100")
	flags.Bool("wipe", false, "Delete existing rows inside the seeding transaction")
	flags.Bool("reset-schema", false, "Drop and recreate every table before seeding")
	flags.String("schema", "", "DDL file used by --reset-schema (default: embedded schema)")
	flags.Uint64("seed", 0, "Random seed, to replay a run (0 = random)")
	flags.String("report", "", "Write a YAML report of the run to this file")
	flags.String("metrics", "", "Write Prometheus textfile metrics to this file")

	viper.BindPFlag("seed.profile", flags.Lookup("profile"))
	viper.BindPFlag("seed.wipe", flags.Lookup("wipe"))
	viper.BindPFlag("seed.reset_schema", flags.Lookup("reset-schema"))
	viper.BindPFlag("seed.seed", flags.Lookup("seed"))
	viper.BindPFlag("schema_path", flags.Lookup("schema"))
	viper.BindPFlag("report_path", flags.Lookup("report"))
	viper.BindPFlag("metrics_path", flags.Lookup("metrics"))
}
