package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/config"
	"github.com/bastionctf/bastion/db"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/logger"
	"github.com/bastionctf/bastion/storage"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the Bastion database",
	Long: `db — Manage Bastion database operations

Examples:
  bastion db migrate   # Apply pending schema migrations
  bastion db stats     # Show content statistics`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show content statistics",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	return db.Migrate(database, logger.Logger)
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := db.OpenWithMigrations(cfg.Database.Path, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	stats, err := storage.NewStore(database, logger.Logger).GetStats(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "failed to read stats")
	}

	fmt.Printf("Database Statistics\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Printf("Database Path: %s\n", cfg.Database.Path)
	fmt.Printf("Challenges:    %d\n", stats.Challenges)
	fmt.Printf("Categories:    %d\n", stats.Categories)
	fmt.Printf("Authors:       %d\n", stats.Authors)
	fmt.Printf("Attachments:   %d\n", stats.Attachments)
	fmt.Printf("Uploads:       %d\n", stats.Uploads)

	return nil
}
