package cmd

import (
	"fmt"
	"strings"

	"github.com/Rana718/gatil/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the seeding steps in execution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := seeder.OrderPlan(seeder.DefaultPlan())
		if err != nil {
			return err
		}

		color.Cyan("📋 %d steps, one transaction", len(plan))
		for i, step := range plan {
			fmt.Printf("  %2d. %-18s -> %s\n", i+1, step.Name, step.Table)
			if len(step.Reads) > 0 {
				color.White("        reads:  %s", strings.Join(step.Reads, ", "))
			}
			if len(step.Writes) > 0 {
				color.White("        writes: %s", strings.Join(step.Writes, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
