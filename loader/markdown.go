package loader

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/bastionctf/bastion/errors"
)

// Challenge descriptions are trusted operator input, so raw HTML in the
// markdown is passed through rather than escaped.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// renderMarkdown converts a markdown description to HTML.
func renderMarkdown(src string) (string, error) {
	var out strings.Builder
	if err := markdown.Convert([]byte(src), &out); err != nil {
		return "", errors.Wrap(err, "render markdown")
	}
	return out.String(), nil
}
