package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/cmd/bastionctl/commands"
	"github.com/bastionctf/bastion/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bastionctl",
	Short: "bastionctl - Bastion admin client",
	Long: `bastionctl - administer a Bastion sync server.

Available commands:
  ping       - Check connectivity and authentication
  get        - Show the server's current challenge snapshot
  diff       - Diff a local content directory against the server
  attachment - Work with content-addressed attachments
  version    - Show version information

Examples:
  bastionctl ping
  bastionctl diff ./challenges
  bastionctl diff ./challenges --watch
  bastionctl attachment hash dist.tar.gz`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeAtLevel(false, logger.LevelForVerbosity(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().String("server", "", "Server address (overrides config)")
	rootCmd.PersistentFlags().String("api-key", "", "Admin API key (overrides config)")

	rootCmd.AddCommand(commands.PingCmd)
	rootCmd.AddCommand(commands.GetCmd)
	rootCmd.AddCommand(commands.DiffCmd)
	rootCmd.AddCommand(commands.AttachmentCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
