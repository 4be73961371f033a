package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/gatil/internal/schema"
	"github.com/spf13/cobra"
)

var resetSchemaPath string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every table and recreate the shelter schema",
	Long: `
Reset the database by dropping all tables and applying the shelter schema.
This is a destructive operation that will:

1. Prompt for confirmation (unless --force is used)
2. Drop all tables in the database
3. Create every shelter table again, empty

⚠️  WARNING: This will permanently delete all data in your database!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if resetSchemaPath != "" {
			cfg.SchemaPath = resetSchemaPath
		}

		ddl, err := schema.DDL(cfg.ProviderName(), cfg.SchemaPath)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !askUserConfirmation("Are you sure you want to reset the database?") {
			return fmt.Errorf("database reset cancelled by user")
		}

		adapter, err := connect(cmd, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		return schema.Recreate(cmd.Context(), adapter, ddl)
	},
}

func askUserConfirmation(message string) bool {
	fmt.Printf("🤔 %s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().StringVar(&resetSchemaPath, "schema", "", "DDL file to apply (default: embedded schema)")
}
