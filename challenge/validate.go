package challenge

import (
	"sort"

	"github.com/bastionctf/bastion/errors"
)

// Validate checks referential integrity of a snapshot: every challenge's
// Category and Author must name an entry in the snapshot's own maps.
//
// This is a separate pre-pass for the authoring/loading layer. The diff
// engine never calls it; diffing is total over any two snapshots, valid
// or not.
func Validate(d Data) error {
	var errs []error
	for _, id := range sortedKeys(d.Challenges) {
		c := d.Challenges[id]
		if _, ok := d.Categories[c.Category]; !ok {
			errs = append(errs, errors.Newf("challenge %q references unknown category %q", id, c.Category))
		}
		if _, ok := d.Authors[c.Author]; !ok {
			errs = append(errs, errors.Newf("challenge %q references unknown author %q", id, c.Author))
		}
	}
	for _, id := range sortedKeys(d.Authors) {
		a := d.Authors[id]
		if _, err := NormalizeDiscordID(a.DiscordID); err != nil {
			errs = append(errs, errors.Wrapf(err, "author %q", id))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Mark(errors.Join(errs...), errors.ErrInvalidRequest)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
