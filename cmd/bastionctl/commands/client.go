package commands

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/bastionctf/bastion/config"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/protocol"
	"github.com/bastionctf/bastion/sync"
)

// dial connects to the configured server and returns an authenticated
// context for calls. Flags override the config file.
func dial(cmd *cobra.Command) (context.Context, *protocol.SyncClient, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to load configuration")
	}

	address, _ := cmd.Flags().GetString("server")
	if address == "" {
		address = cfg.Server.Address
	}
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" && len(cfg.Auth.APIKeys) > 0 {
		apiKey = cfg.Auth.APIKeys[0]
	}
	if apiKey == "" {
		return nil, nil, nil, errors.New("no api key: pass --api-key or set auth.api_keys in bastion.toml")
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "failed to connect to %s", address)
	}

	ctx := sync.WithBearerToken(cmd.Context(), apiKey)
	cleanup := func() { conn.Close() }
	return ctx, protocol.NewSyncClient(conn), cleanup, nil
}
