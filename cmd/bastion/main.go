package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/bastionctf/bastion/cmd/bastion/commands"
	"github.com/bastionctf/bastion/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bastion",
	Short: "Bastion - CTF challenge sync server",
	Long: `Bastion - authoritative store and sync endpoint for CTF challenge content.

Available commands:
  serve   - Start the gRPC sync server
  db      - Manage the Bastion database
  version - Show version information

Examples:
  bastion serve                 # Start the sync server
  bastion db migrate            # Apply pending schema migrations
  bastion db stats              # Show content statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		level := zapcore.InfoLevel
		if verbosity > 0 {
			level = zapcore.DebugLevel
		}
		if err := logger.InitializeAtLevel(jsonOutput, level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON for machine consumption")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
