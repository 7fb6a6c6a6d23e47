package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show bastionctl version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
