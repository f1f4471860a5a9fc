package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/hotseed/internal/apply"
	"github.com/Lumos-Labs-HQ/hotseed/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Generate seed data and load it into a database",
	Long: `Generate the seed script and execute it in a single transaction against
the database whose URL is stored in the configured environment variable
(DATABASE_URL by default). The schema must already exist.`,
	Example: `  DATABASE_URL=postgres://localhost/hotwind hotseed apply --seed 42
  hotseed apply --dialect sqlite --url-env HOTWIND_DB`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindGenerationFlags(cmd.Flags()); err != nil {
			return err
		}
		return viper.BindPFlag("database.url_env", cmd.Flags().Lookup("url-env"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, res, err := buildScript()
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		dialect := cfg.GetDialect()
		db, err := apply.Open(ctx, dialect, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		color.Cyan("🚀 Applying %s seed script...", dialect)
		report, err := apply.New(db, dialect).Run(ctx, res.Script)
		if err != nil {
			return err
		}

		color.Green("✅ Applied %d statements (seed %d)", report.Statements, res.Seed)
		fmt.Fprintln(color.Output)
		color.New(color.FgCyan, color.Bold).Println("📊 Rows per table (inserted / present):")
		for _, tc := range report.Tables {
			line := fmt.Sprintf("   %-16s %6d / %d", tc.Table, tc.Inserted, tc.Rows)
			if int64(tc.Inserted) > tc.Rows {
				color.Yellow("%s  ⚠️  fewer rows than inserted", line)
				continue
			}
			fmt.Fprintln(color.Output, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	addGenerationFlags(applyCmd.Flags())
	applyCmd.Flags().String("url-env", config.DefaultURLEnv, "Environment variable holding the database URL")
}
