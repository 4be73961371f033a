package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/Rana718/gatil/internal/database"
	"github.com/Rana718/gatil/internal/ident"
	"github.com/Rana718/gatil/internal/schema"
	"github.com/fatih/color"
)

type Options struct {
	Profile Profile
	// Seed replays a previous run; 0 picks a random one.
	Seed uint64
	// Wipe deletes every row inside the seeding transaction first.
	Wipe bool
	// Plan defaults to DefaultPlan and is run in OrderPlan's order.
	Plan []Step
}

type Seeder struct {
	adapter   database.DatabaseAdapter
	stmts     *Statements
	generator *DataGenerator
	seed      uint64
	opts      Options
}

func NewSeeder(adapter database.DatabaseAdapter, opts Options) (*Seeder, error) {
	if opts.Plan == nil {
		opts.Plan = DefaultPlan()
	}
	if opts.Profile.Counts == nil {
		opts.Profile = LargeProfile()
	}
	plan, err := OrderPlan(opts.Plan)
	if err != nil {
		return nil, err
	}
	opts.Plan = plan

	stmts, err := NewStatements(adapter.Dialect())
	if err != nil {
		return nil, fmt.Errorf("failed to build statements: %w", err)
	}

	generator, seed := NewDataGenerator(opts.Seed)
	return &Seeder{
		adapter:   adapter,
		stmts:     stmts,
		generator: generator,
		seed:      seed,
		opts:      opts,
	}, nil
}

// Seed returns the seed the run uses, even when Options.Seed was 0.
func (s *Seeder) Seed() uint64 {
	return s.seed
}

// Run executes the plan in one transaction. Any failure rolls back every row
// the run wrote and is returned unchanged in its chain.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	color.Cyan("🌱 Starting database seeding...")
	color.White("   profile %s, seed %d", s.opts.Profile.Name, s.seed)

	tx, err := s.adapter.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	color.Cyan("🔒 Transaction started")

	summary := &Summary{
		Profile: s.opts.Profile.Name,
		Seed:    s.seed,
		Dialect: s.adapter.Dialect().Name,
		Started: time.Now(),
		State:   NewState(),
	}

	seedErr := s.runSteps(ctx, tx, summary)
	if seedErr != nil {
		color.Yellow("🔄 Rolling back transaction due to error...")
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return nil, fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, seedErr)
		}
		color.Yellow("✅ Transaction rolled back")
		return nil, seedErr
	}

	if err := tx.Commit(ctx); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w (rollback: %v)", err, rbErr)
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	color.Cyan("🔓 Transaction committed")

	summary.Duration = time.Since(summary.Started)
	color.Green("\n✅ Database seeding completed successfully!")
	return summary, nil
}

func (s *Seeder) runSteps(ctx context.Context, tx database.Queryer, summary *Summary) error {
	if s.opts.Wipe {
		if err := schema.Wipe(ctx, tx, s.adapter.Dialect()); err != nil {
			return err
		}
	}

	r := &run{
		tx:      tx,
		stmts:   s.stmts,
		gen:     s.generator,
		ids:     ident.NewRegistry(),
		profile: s.opts.Profile,
		state:   summary.State,
	}

	for _, step := range s.opts.Plan {
		if err := ctx.Err(); err != nil {
			return err
		}

		color.Cyan("  📝 Seeding %s...", step.Label)
		start := time.Now()
		before := r.state.TotalInserted() + r.state.Updated[step.Table]

		if err := step.Run(ctx, r); err != nil {
			return fmt.Errorf("seed step %q: %w", step.Name, err)
		}

		rows := r.state.TotalInserted() + r.state.Updated[step.Table] - before
		summary.Steps = append(summary.Steps, StepResult{
			Name:     step.Name,
			Rows:     rows,
			Duration: time.Since(start),
		})
		color.Green("  ✅ %s seeded successfully (%d rows)", step.Label, rows)
	}
	return nil
}
