package commands

import (
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/protocol"
)

// GetCmd shows the server's current challenge snapshot
var GetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the server's current challenge snapshot",
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx, client, cleanup, err := dial(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetChallenges(ctx, &protocol.Empty{})
	if err != nil {
		return err
	}
	data := protocol.DataFromWire(reply)

	pterm.DefaultSection.Println("Challenges")
	rows := pterm.TableData{{"ID", "Name", "Category", "Author", "Files"}}
	for _, id := range sortedKeys(data.Challenges) {
		c := data.Challenges[id]
		rows = append(rows, []string{id, c.Name, c.Category, c.Author, strconv.Itoa(len(c.Files))})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Categories")
	rows = pterm.TableData{{"ID", "Name", "Color"}}
	for _, id := range sortedKeys(data.Categories) {
		c := data.Categories[id]
		rows = append(rows, []string{id, c.Name, c.Color})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Authors")
	rows = pterm.TableData{{"ID", "Name", "Discord"}}
	for _, id := range sortedKeys(data.Authors) {
		a := data.Authors[id]
		rows = append(rows, []string{id, a.Name, a.DiscordID})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func sortedKeys[V challenge.Challenge | challenge.Category | challenge.Author](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
