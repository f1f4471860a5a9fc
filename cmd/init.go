package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/hotseed/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a hotseed.config.yaml with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path := config.FileName
		if cfgFile != "" {
			path = cfgFile
		}

		if err := config.WriteTemplate(path, force); err != nil {
			return err
		}

		color.Green("✅ Created %s", path)
		fmt.Fprintln(color.Output)
		fmt.Fprintln(color.Output, "🚀 Next steps:")
		fmt.Fprintln(color.Output, "   hotseed generate > seed.sql     # Write the script")
		fmt.Fprintln(color.Output, "   hotseed apply                   # Load it into $DATABASE_URL")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
