package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/config"
	"github.com/bastionctf/bastion/db"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/logger"
	"github.com/bastionctf/bastion/storage"
	"github.com/bastionctf/bastion/sync"
)

// ServeCmd starts the gRPC sync server
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC sync server",
	Long: `Start the Bastion sync server.

The server exposes the challenge snapshot, the diff endpoint, and
attachment lookup over gRPC. Every call must carry a configured admin
API key as "authorization: Bearer <key>" metadata.`,
	RunE: runServe,
}

var serveAddressFlag string

func init() {
	ServeCmd.Flags().StringVar(&serveAddressFlag, "address", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	address := cfg.Server.Address
	if serveAddressFlag != "" {
		address = serveAddressFlag
	}

	database, err := db.OpenWithMigrations(cfg.Database.Path, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer database.Close()

	store := storage.NewStore(database, logger.Logger)
	service := sync.NewService(store, challenge.Options{
		IncludeScoring: cfg.Sync.IncludeScoring,
	}, logger.Logger)

	server, err := sync.NewServer(service, cfg.Auth.APIKeys, logger.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx, address)
}
