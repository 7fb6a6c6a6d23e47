package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/attach"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/protocol"
)

// AttachmentCmd works with content-addressed attachments
var AttachmentCmd = &cobra.Command{
	Use:   "attachment",
	Short: "Work with content-addressed attachments",
	Long: `attachment — inspect challenge attachment uploads

Examples:
  bastionctl attachment hash dist.tar.gz   # Print the content hash of a file
  bastionctl attachment url dist.tar.gz    # Look up the file's upload URL`,
}

var attachmentHashCmd = &cobra.Command{
	Use:   "hash <file>",
	Short: "Print the content hash of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttachmentHash,
}

var attachmentURLCmd = &cobra.Command{
	Use:   "url <file>",
	Short: "Look up the upload URL for a file on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttachmentURL,
}

func init() {
	AttachmentCmd.AddCommand(attachmentHashCmd)
	AttachmentCmd.AddCommand(attachmentURLCmd)
}

func runAttachmentHash(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}
	fmt.Println(attach.HashBytes(data))
	return nil
}

func runAttachmentURL(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}
	hash := attach.HashBytes(data)

	ctx, client, cleanup, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetAttachmentByHash(ctx, &protocol.GetAttachmentByHashRequest{Hash: hash})
	if err != nil {
		return err
	}
	if reply.URL == nil {
		pterm.Warning.Printfln("no upload for %s (sha256 %s)", args[0], hash)
		return nil
	}
	fmt.Println(*reply.URL)
	return nil
}
