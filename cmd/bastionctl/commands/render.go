package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/bastionctf/bastion/challenge"
)

// renderPatch prints a human-readable patch, one action per block.
func renderPatch(p challenge.Patch) {
	if p.Empty() {
		pterm.Success.Println("Server is up to date, nothing to change")
		return
	}

	for _, action := range p.Actions {
		switch a := action.(type) {
		case challenge.CreateChallenge:
			pterm.FgGreen.Printfln("+ challenge %s (%s)", a.ID, a.Value.Name)
		case challenge.DeleteChallenge:
			pterm.FgRed.Printfln("- challenge %s", a.ID)
		case challenge.PatchChallenge:
			pterm.FgYellow.Printfln("~ challenge %s", a.ID)
			renderChallengePatch(a.Patch)
		case challenge.CreateAuthor:
			pterm.FgGreen.Printfln("+ author %s (%s)", a.ID, a.Value.Name)
		case challenge.DeleteAuthor:
			pterm.FgRed.Printfln("- author %s", a.ID)
		case challenge.PatchAuthor:
			pterm.FgYellow.Printfln("~ author %s", a.ID)
			renderFieldPatch("name", a.Patch.Name)
			renderFieldPatch("avatar_url", a.Patch.AvatarURL)
			renderFieldPatch("discord_id", a.Patch.DiscordID)
		case challenge.CreateCategory:
			pterm.FgGreen.Printfln("+ category %s (%s)", a.ID, a.Value.Name)
		case challenge.DeleteCategory:
			pterm.FgRed.Printfln("- category %s", a.ID)
		case challenge.PatchCategory:
			pterm.FgYellow.Printfln("~ category %s", a.ID)
			renderFieldPatch("name", a.Patch.Name)
			renderFieldPatch("color", a.Patch.Color)
		}
	}

	pterm.Println()
	pterm.Info.Printfln("%d action(s); the patch is advisory and has not been applied", len(p.Actions))
}

func renderChallengePatch(p challenge.ChallengePatch) {
	renderFieldPatch("name", p.Name)
	renderFieldPatch("description", p.Description)
	renderFieldPatch("category", p.Category)
	renderFieldPatch("author", p.Author)
	renderOptFieldPatch("ticket_template", p.TicketTemplate)
	renderFieldPatch("flag", p.Flag)
	renderOptFieldPatch("healthscript", p.Healthscript)
	if p.Points != nil {
		pterm.Printfln("    points: %s -> %s", fmtOptInt(p.Points.Old), fmtOptInt(p.Points.New))
	}
	renderOptFieldPatch("score_type", p.ScoreType)
	if p.Files != nil {
		pterm.Printfln("    files: %s -> %s", fmtFiles(p.Files.Old), fmtFiles(p.Files.New))
	}
}

func renderFieldPatch(name string, p *challenge.FieldPatch[string]) {
	if p == nil {
		return
	}
	pterm.Printfln("    %s: %s -> %s", name, fmtValue(p.Old), fmtValue(p.New))
}

func renderOptFieldPatch(name string, p *challenge.FieldPatch[*string]) {
	if p == nil {
		return
	}
	pterm.Printfln("    %s: %s -> %s", name, fmtOptString(p.Old), fmtOptString(p.New))
}

// fmtValue quotes a field value, truncating long values (rendered
// descriptions can be whole HTML documents).
func fmtValue(v string) string {
	const max = 60
	if len(v) > max {
		v = v[:max] + "…"
	}
	return strconv.Quote(v)
}

func fmtOptString(v *string) string {
	if v == nil {
		return "<unset>"
	}
	return fmtValue(*v)
}

func fmtOptInt(v *int64) string {
	if v == nil {
		return "<unset>"
	}
	return strconv.FormatInt(*v, 10)
}

func fmtFiles(files []challenge.Attachment) string {
	if len(files) == 0 {
		return "[]"
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return fmt.Sprintf("[%s]", strings.Join(names, ", "))
}
