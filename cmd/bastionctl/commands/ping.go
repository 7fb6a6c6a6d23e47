package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/protocol"
)

// PingCmd checks connectivity and authentication
var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity and authentication",
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx, client, cleanup, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	name := "bastionctl"
	if hostname, err := os.Hostname(); err == nil {
		name = hostname
	}

	reply, err := client.Ping(ctx, &protocol.PingRequest{Name: name})
	if err != nil {
		return err
	}

	pterm.Success.Println(reply.Message)
	return nil
}
