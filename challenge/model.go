// Package challenge defines the canonical in-memory model for authored
// competition content and the engine that diffs two snapshots of it.
//
// Entities are keyed by a stable, human-chosen string identifier. The
// stable id is the entity's identity for diffing purposes: changing it
// is a delete of the old id plus a create of the new one, never a
// rename.
package challenge

import (
	"strconv"

	"github.com/bastionctf/bastion/errors"
)

// Data is one complete snapshot of competition content, either the
// server's current state or an authored target state. Snapshots are
// never mutated once built; the differ treats them as values.
type Data struct {
	Challenges map[string]Challenge
	Categories map[string]Category
	Authors    map[string]Author
}

// Challenge is a single challenge. Category and Author hold stable ids
// of entries in the same snapshot's Categories/Authors maps; the differ
// does not resolve or validate those references (see Validate).
type Challenge struct {
	Name           string
	Description    string
	Category       string
	Author         string
	TicketTemplate *string
	Files          []Attachment
	Flag           string
	Healthscript   *string

	// Scoring metadata. Excluded from diff comparison under the default
	// policy; see Options.IncludeScoring.
	Points    *int64
	ScoreType *string
}

// Attachment is a named, durably hosted challenge file.
type Attachment struct {
	Name string
	URL  string
}

// Category groups challenges under a display name and a CSS color token.
type Category struct {
	Name  string
	Color string
}

// Author credits a challenge author. DiscordID is the decimal string
// form of a non-zero 64-bit Discord snowflake.
type Author struct {
	Name      string
	AvatarURL string
	DiscordID string
}

// NormalizeDiscordID canonicalizes a Discord id to the decimal string of
// its numeric value. The id must parse as a non-zero unsigned 64-bit
// integer; "012345" and "12345" normalize to the same string.
func NormalizeDiscordID(id string) (string, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return "", errors.Wrapf(err, "invalid discord id %q", id)
	}
	if n == 0 {
		return "", errors.Newf("discord id must be non-zero")
	}
	return strconv.FormatUint(n, 10), nil
}

// canonicalDiscordID normalizes for comparison, falling back to the raw
// string when the value does not parse. Malformed ids still compare
// verbatim rather than aborting the diff; the differ is total.
func canonicalDiscordID(id string) string {
	normalized, err := NormalizeDiscordID(id)
	if err != nil {
		return id
	}
	return normalized
}

// attachmentsEqual reports structural equality of two attachment lists,
// order included.
func attachmentsEqual(a, b []Attachment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
