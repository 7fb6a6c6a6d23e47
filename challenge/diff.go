package challenge

// Options selects the comparison policy for a diff.
type Options struct {
	// IncludeScoring makes Points and ScoreType participate in challenge
	// equality. The default excludes them: scoring is tuned live on the
	// server during a competition and a content sync must not keep
	// reporting it as drift.
	IncludeScoring bool
}

// Diff compares the current server snapshot (old) against an authored
// snapshot (new) and returns the actions that transform old into new,
// under the default comparison policy.
//
// Diff is a pure function: no I/O, no mutation of either snapshot, and
// deterministic output. Diff(s, s) is always empty. Direction matters
// only for the Old/New payloads inside field patches; the set of
// touched ids is the symmetric difference of the key sets either way.
func Diff(old, new Data) Patch {
	return DiffWithOptions(old, new, Options{})
}

// DiffWithOptions is Diff with an explicit comparison policy.
//
// Per collection, ids are visited in sorted order: first old-side ids
// (emitting Patch or Delete), then new-side ids absent from old
// (emitting Create). Collections are visited challenges, authors,
// categories.
func DiffWithOptions(old, new Data, opts Options) Patch {
	var patch Patch

	patch.Actions = append(patch.Actions, diffCollection(
		old.Challenges, new.Challenges,
		func(o, n Challenge) (ChallengePatch, bool) {
			p := diffChallenge(o, n, opts)
			return p, p.HasChange()
		},
		func(id string, v Challenge) Action { return CreateChallenge{ID: id, Value: v} },
		func(id string, p ChallengePatch) Action { return PatchChallenge{ID: id, Patch: p} },
		func(id string) Action { return DeleteChallenge{ID: id} },
	)...)

	patch.Actions = append(patch.Actions, diffCollection(
		old.Authors, new.Authors,
		func(o, n Author) (AuthorPatch, bool) {
			p := diffAuthor(o, n)
			return p, p.HasChange()
		},
		func(id string, v Author) Action { return CreateAuthor{ID: id, Value: v} },
		func(id string, p AuthorPatch) Action { return PatchAuthor{ID: id, Patch: p} },
		func(id string) Action { return DeleteAuthor{ID: id} },
	)...)

	patch.Actions = append(patch.Actions, diffCollection(
		old.Categories, new.Categories,
		func(o, n Category) (CategoryPatch, bool) {
			p := diffCategory(o, n)
			return p, p.HasChange()
		},
		func(id string, v Category) Action { return CreateCategory{ID: id, Value: v} },
		func(id string, p CategoryPatch) Action { return PatchCategory{ID: id, Patch: p} },
		func(id string) Action { return DeleteCategory{ID: id} },
	)...)

	return patch
}

// diffCollection produces the action list for one id-keyed collection.
// Old ids are visited first (patch or delete), then new ids absent from
// old (create); both passes iterate in sorted key order. An id present
// on both sides emits an action only when the field diff reports a
// change, so entities differing solely in policy-excluded fields emit
// nothing.
func diffCollection[V any, P any](
	old, new map[string]V,
	diff func(o, n V) (P, bool),
	create func(id string, v V) Action,
	patch func(id string, p P) Action,
	del func(id string) Action,
) []Action {
	var actions []Action

	for _, id := range sortedKeys(old) {
		n, ok := new[id]
		if !ok {
			actions = append(actions, del(id))
			continue
		}
		if p, changed := diff(old[id], n); changed {
			actions = append(actions, patch(id, p))
		}
	}

	for _, id := range sortedKeys(new) {
		if _, ok := old[id]; !ok {
			actions = append(actions, create(id, new[id]))
		}
	}

	return actions
}

func diffChallenge(old, new Challenge, opts Options) ChallengePatch {
	p := ChallengePatch{
		Name:           fieldDiff(old.Name, new.Name),
		Description:    fieldDiff(old.Description, new.Description),
		Category:       fieldDiff(old.Category, new.Category),
		Author:         fieldDiff(old.Author, new.Author),
		TicketTemplate: optionalDiff(old.TicketTemplate, new.TicketTemplate),
		Flag:           fieldDiff(old.Flag, new.Flag),
		Healthscript:   optionalDiff(old.Healthscript, new.Healthscript),
	}
	if !attachmentsEqual(old.Files, new.Files) {
		p.Files = &FieldPatch[[]Attachment]{Old: old.Files, New: new.Files}
	}
	if opts.IncludeScoring {
		p.Points = optionalDiff(old.Points, new.Points)
		p.ScoreType = optionalDiff(old.ScoreType, new.ScoreType)
	}
	return p
}

func diffAuthor(old, new Author) AuthorPatch {
	p := AuthorPatch{
		Name:      fieldDiff(old.Name, new.Name),
		AvatarURL: fieldDiff(old.AvatarURL, new.AvatarURL),
	}
	// Discord ids compare by numeric value so that representation
	// differences ("012345" vs "12345") never produce a patch. The
	// emitted patch still carries the values verbatim.
	if canonicalDiscordID(old.DiscordID) != canonicalDiscordID(new.DiscordID) {
		p.DiscordID = &FieldPatch[string]{Old: old.DiscordID, New: new.DiscordID}
	}
	return p
}

func diffCategory(old, new Category) CategoryPatch {
	return CategoryPatch{
		Name:  fieldDiff(old.Name, new.Name),
		Color: fieldDiff(old.Color, new.Color),
	}
}

// fieldDiff returns a populated FieldPatch when the two values differ,
// nil otherwise.
func fieldDiff[T comparable](old, new T) *FieldPatch[T] {
	if old == new {
		return nil
	}
	return &FieldPatch[T]{Old: old, New: new}
}

// optionalDiff is fieldDiff over optional values: two absent values are
// equal, an absent and a present value differ, two present values
// compare by content.
func optionalDiff[T comparable](old, new *T) *FieldPatch[*T] {
	if old == nil && new == nil {
		return nil
	}
	if old != nil && new != nil && *old == *new {
		return nil
	}
	return &FieldPatch[*T]{Old: old, New: new}
}
