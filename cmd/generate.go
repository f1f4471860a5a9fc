package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/config"
	"github.com/Lumos-Labs-HQ/hotseed/internal/rates"
	"github.com/Lumos-Labs-HQ/hotseed/internal/seeder"
	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// generation flags and the config keys they override
var generationFlags = []struct {
	name string
	key  string
}{
	{"start", "start_date"},
	{"end", "end_date"},
	{"seed", "seed"},
	{"dialect", "dialect"},
	{"purchases", "purchases"},
	{"invoices", "invoices"},
	{"sales-offset", "sales_start_offset"},
	{"mu", "rates.mu"},
	{"sigma", "rates.sigma"},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the seed data SQL script",
	Long: `Generate reference data, exchange rates, purchases and sales for the
configured period and write them as one transactional SQL script.

The script goes to stdout unless --out is given; progress goes to stderr.`,
	Example: `  hotseed generate > seed.sql
  hotseed generate --seed 42 --dialect mysql --out seed.sql
  hotseed generate --start 2024-06-01 --end 2024-06-30 --invoices 50`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindGenerationFlags(cmd.Flags()); err != nil {
			return err
		}
		return viper.BindPFlag("output", cmd.Flags().Lookup("out"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, res, err := buildScript()
		if err != nil {
			return err
		}

		if cfg.Output == "" {
			if err := res.Script.Render(os.Stdout); err != nil {
				return fmt.Errorf("failed to write script: %w", err)
			}
		} else if err := writeScriptFile(cfg.Output, res.Script); err != nil {
			return err
		}

		printSummary(res.Script)
		if cfg.Output != "" {
			color.Green("✅ Seed script written to %s (seed %d)", cfg.Output, res.Seed)
		}
		return nil
	},
}

func addGenerationFlags(flags *pflag.FlagSet) {
	d := config.Default()
	flags.String("start", d.StartDate, "First day of the generated period (YYYY-MM-DD)")
	flags.String("end", d.EndDate, "Last day of the generated period (YYYY-MM-DD)")
	flags.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flags.String("dialect", d.Dialect, "SQL dialect (postgresql, mysql, sqlite)")
	flags.Int("purchases", d.Purchases, "Number of purchase orders")
	flags.Int("invoices", d.Invoices, "Number of sales invoices")
	flags.Int("sales-offset", d.SalesStartOffset, "Days after the start before the first sale")
	flags.Float64("mu", rates.DefaultMu, "Daily drift of the exchange-rate walk")
	flags.Float64("sigma", rates.DefaultSigma, "Daily volatility of the exchange-rate walk")
}

// bindGenerationFlags runs per command so the last bound command
// does not shadow the one actually invoked.
func bindGenerationFlags(flags *pflag.FlagSet) error {
	for _, f := range generationFlags {
		if err := viper.BindPFlag(f.key, flags.Lookup(f.name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", f.name, err)
		}
	}
	return nil
}

// buildScript loads the config and runs the generator once.
func buildScript() (*config.Config, *seeder.Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	seed := resolveSeed(cfg.Seed, time.Now())
	if cfg.Seed == 0 {
		color.Yellow("🎲 No seed configured, using %d (pass --seed %d to reproduce)", seed, seed)
	}

	s, err := seeder.NewSeeder(cfg, seed)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.Seed()
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}

func resolveSeed(configured int64, now time.Time) int64 {
	if configured != 0 {
		return configured
	}
	seed := now.UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

func writeScriptFile(path string, script *sqlgen.Script) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := script.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func printSummary(script *sqlgen.Script) {
	writeSummary(color.Output, script)
}

func writeSummary(w io.Writer, script *sqlgen.Script) {
	fmt.Fprintln(w)
	color.New(color.FgCyan, color.Bold).Fprintln(w, "📊 Rows generated:")
	total := 0
	for _, table := range script.Tables() {
		n := script.Count(table)
		total += n
		fmt.Fprintf(w, "   %-16s %6d\n", table, n)
	}
	fmt.Fprintf(w, "   %-16s %6d\n", "total", total)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerationFlags(generateCmd.Flags())
	generateCmd.Flags().StringP("out", "o", "", "Write the script to a file instead of stdout")
}
