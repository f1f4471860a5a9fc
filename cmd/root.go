package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/hotseed/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	red := color.New(color.FgRed, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║   🔥  h o t s e e d                          ║",
		"║       HotWind seed data generator            ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		red.Println(line)
	}

	fmt.Fprint(color.Output, "   ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "hotseed",
	Short: "Generate seed data SQL for the HotWind demo database",
	Long: `
hotseed synthesizes a year of plausible business data for the HotWind
heater-distribution database and prints it as a single SQL script.

Generated data:
- Reference tables (countries, currencies, heater models, vendors, customers)
- Daily exchange rates for USD, EUR, CNY and PLN against UAH
- Purchase orders with inventory lots
- Sales invoices with invoice lines

Dialects:
- PostgreSQL (default)
- MySQL
- SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("hotseed version %s\n", Version)
			return
		}

		showBanner()
		fmt.Fprintln(color.Output)
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// stdout is reserved for SQL
	color.Output = color.Error

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hotseed.config.yaml)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Overwrite existing files")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(strings.TrimSuffix(config.FileName, ".yaml"))
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}
