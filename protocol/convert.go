package protocol

import (
	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
)

// Converters between the challenge domain model and the wire messages.
// Wire messages use pointers and may arrive partially populated;
// conversion from the wire is defensive and never panics on nil
// submessages.

// DataToWire converts a snapshot for transport.
func DataToWire(d challenge.Data) *ChallengeData {
	out := &ChallengeData{
		Challenges: make(map[string]*Challenge, len(d.Challenges)),
		Categories: make(map[string]*Category, len(d.Categories)),
		Authors:    make(map[string]*Author, len(d.Authors)),
	}
	for id, c := range d.Challenges {
		out.Challenges[id] = ChallengeToWire(c)
	}
	for id, c := range d.Categories {
		out.Categories[id] = &Category{Name: c.Name, Color: c.Color}
	}
	for id, a := range d.Authors {
		out.Authors[id] = &Author{Name: a.Name, AvatarURL: a.AvatarURL, DiscordID: a.DiscordID}
	}
	return out
}

// DataFromWire converts a received snapshot into the domain model.
func DataFromWire(m *ChallengeData) challenge.Data {
	d := challenge.Data{
		Challenges: make(map[string]challenge.Challenge, len(m.Challenges)),
		Categories: make(map[string]challenge.Category, len(m.Categories)),
		Authors:    make(map[string]challenge.Author, len(m.Authors)),
	}
	for id, c := range m.Challenges {
		if c == nil {
			c = new(Challenge)
		}
		d.Challenges[id] = ChallengeFromWire(c)
	}
	for id, c := range m.Categories {
		if c == nil {
			c = new(Category)
		}
		d.Categories[id] = challenge.Category{Name: c.Name, Color: c.Color}
	}
	for id, a := range m.Authors {
		if a == nil {
			a = new(Author)
		}
		d.Authors[id] = challenge.Author{Name: a.Name, AvatarURL: a.AvatarURL, DiscordID: a.DiscordID}
	}
	return d
}

// ChallengeToWire converts one challenge for transport.
func ChallengeToWire(c challenge.Challenge) *Challenge {
	return &Challenge{
		Name:           c.Name,
		Description:    c.Description,
		Category:       c.Category,
		Author:         c.Author,
		TicketTemplate: cloneOpt(c.TicketTemplate),
		Files:          attachmentsToWire(c.Files),
		Flag:           c.Flag,
		Healthscript:   cloneOpt(c.Healthscript),
		Points:         cloneOpt(c.Points),
		ScoreType:      cloneOpt(c.ScoreType),
	}
}

// ChallengeFromWire converts one received challenge into the domain model.
func ChallengeFromWire(m *Challenge) challenge.Challenge {
	return challenge.Challenge{
		Name:           m.Name,
		Description:    m.Description,
		Category:       m.Category,
		Author:         m.Author,
		TicketTemplate: cloneOpt(m.TicketTemplate),
		Files:          attachmentsFromWire(m.Files),
		Flag:           m.Flag,
		Healthscript:   cloneOpt(m.Healthscript),
		Points:         cloneOpt(m.Points),
		ScoreType:      cloneOpt(m.ScoreType),
	}
}

func attachmentsToWire(files []challenge.Attachment) []*ChallengeAttachment {
	if files == nil {
		return nil
	}
	out := make([]*ChallengeAttachment, 0, len(files))
	for _, f := range files {
		out = append(out, &ChallengeAttachment{Name: f.Name, URL: f.URL})
	}
	return out
}

func attachmentsFromWire(files []*ChallengeAttachment) []challenge.Attachment {
	if files == nil {
		return nil
	}
	out := make([]challenge.Attachment, 0, len(files))
	for _, f := range files {
		if f == nil {
			f = new(ChallengeAttachment)
		}
		out = append(out, challenge.Attachment{Name: f.Name, URL: f.URL})
	}
	return out
}

// PatchToWire converts a computed patch for transport, preserving
// action order.
func PatchToWire(p challenge.Patch) *ChallengeDataPatch {
	out := &ChallengeDataPatch{
		Actions: make([]*ChallengeDataPatchAction, 0, len(p.Actions)),
	}
	for _, a := range p.Actions {
		out.Actions = append(out.Actions, actionToWire(a))
	}
	return out
}

func actionToWire(a challenge.Action) *ChallengeDataPatchAction {
	switch a := a.(type) {
	case challenge.CreateChallenge:
		return &ChallengeDataPatchAction{CreateChallenge: &CreateChallenge{
			ID:    a.ID,
			Value: ChallengeToWire(a.Value),
		}}
	case challenge.PatchChallenge:
		return &ChallengeDataPatchAction{PatchChallenge: &PatchChallenge{
			ID:    a.ID,
			Patch: challengePatchToWire(a.Patch),
		}}
	case challenge.DeleteChallenge:
		return &ChallengeDataPatchAction{DeleteChallenge: &DeleteChallenge{ID: a.ID}}
	case challenge.CreateAuthor:
		return &ChallengeDataPatchAction{CreateAuthor: &CreateAuthor{
			ID:    a.ID,
			Value: &Author{Name: a.Value.Name, AvatarURL: a.Value.AvatarURL, DiscordID: a.Value.DiscordID},
		}}
	case challenge.PatchAuthor:
		return &ChallengeDataPatchAction{PatchAuthor: &PatchAuthor{
			ID:    a.ID,
			Patch: authorPatchToWire(a.Patch),
		}}
	case challenge.DeleteAuthor:
		return &ChallengeDataPatchAction{DeleteAuthor: &DeleteAuthor{ID: a.ID}}
	case challenge.CreateCategory:
		return &ChallengeDataPatchAction{CreateCategory: &CreateCategory{
			ID:    a.ID,
			Value: &Category{Name: a.Value.Name, Color: a.Value.Color},
		}}
	case challenge.PatchCategory:
		return &ChallengeDataPatchAction{PatchCategory: &PatchCategory{
			ID:    a.ID,
			Patch: categoryPatchToWire(a.Patch),
		}}
	case challenge.DeleteCategory:
		return &ChallengeDataPatchAction{DeleteCategory: &DeleteCategory{ID: a.ID}}
	}
	// The Action interface is closed; reaching here is a programming error.
	panic(errors.AssertionFailedf("unknown action type %T", a))
}

// PatchFromWire converts a received patch into the domain model. It
// fails on an action with no variant set.
func PatchFromWire(m *ChallengeDataPatch) (challenge.Patch, error) {
	p := challenge.Patch{Actions: make([]challenge.Action, 0, len(m.Actions))}
	for i, a := range m.Actions {
		if a == nil {
			return challenge.Patch{}, errors.Mark(
				errors.Newf("patch action %d is empty", i), errors.ErrInvalidRequest)
		}
		action, err := actionFromWire(a)
		if err != nil {
			return challenge.Patch{}, errors.Wrapf(err, "patch action %d", i)
		}
		p.Actions = append(p.Actions, action)
	}
	return p, nil
}

func actionFromWire(a *ChallengeDataPatchAction) (challenge.Action, error) {
	switch {
	case a.CreateChallenge != nil:
		v := a.CreateChallenge.Value
		if v == nil {
			v = new(Challenge)
		}
		return challenge.CreateChallenge{ID: a.CreateChallenge.ID, Value: ChallengeFromWire(v)}, nil
	case a.PatchChallenge != nil:
		return challenge.PatchChallenge{
			ID:    a.PatchChallenge.ID,
			Patch: challengePatchFromWire(a.PatchChallenge.Patch),
		}, nil
	case a.DeleteChallenge != nil:
		return challenge.DeleteChallenge{ID: a.DeleteChallenge.ID}, nil
	case a.CreateAuthor != nil:
		v := a.CreateAuthor.Value
		if v == nil {
			v = new(Author)
		}
		return challenge.CreateAuthor{
			ID:    a.CreateAuthor.ID,
			Value: challenge.Author{Name: v.Name, AvatarURL: v.AvatarURL, DiscordID: v.DiscordID},
		}, nil
	case a.PatchAuthor != nil:
		return challenge.PatchAuthor{
			ID:    a.PatchAuthor.ID,
			Patch: authorPatchFromWire(a.PatchAuthor.Patch),
		}, nil
	case a.DeleteAuthor != nil:
		return challenge.DeleteAuthor{ID: a.DeleteAuthor.ID}, nil
	case a.CreateCategory != nil:
		v := a.CreateCategory.Value
		if v == nil {
			v = new(Category)
		}
		return challenge.CreateCategory{
			ID:    a.CreateCategory.ID,
			Value: challenge.Category{Name: v.Name, Color: v.Color},
		}, nil
	case a.PatchCategory != nil:
		return challenge.PatchCategory{
			ID:    a.PatchCategory.ID,
			Patch: categoryPatchFromWire(a.PatchCategory.Patch),
		}, nil
	case a.DeleteCategory != nil:
		return challenge.DeleteCategory{ID: a.DeleteCategory.ID}, nil
	}
	return nil, errors.Mark(errors.Newf("no action variant set"), errors.ErrInvalidRequest)
}

func challengePatchToWire(p challenge.ChallengePatch) *ChallengePatch {
	return &ChallengePatch{
		Name:           stringPatchToWire(p.Name),
		Description:    stringPatchToWire(p.Description),
		Category:       stringPatchToWire(p.Category),
		Author:         stringPatchToWire(p.Author),
		TicketTemplate: optStringPatchToWire(p.TicketTemplate),
		Files:          attachmentsPatchToWire(p.Files),
		Flag:           stringPatchToWire(p.Flag),
		Healthscript:   optStringPatchToWire(p.Healthscript),
		Points:         optInt64PatchToWire(p.Points),
		ScoreType:      optStringPatchToWire(p.ScoreType),
	}
}

func challengePatchFromWire(m *ChallengePatch) challenge.ChallengePatch {
	if m == nil {
		return challenge.ChallengePatch{}
	}
	return challenge.ChallengePatch{
		Name:           stringPatchFromWire(m.Name),
		Description:    stringPatchFromWire(m.Description),
		Category:       stringPatchFromWire(m.Category),
		Author:         stringPatchFromWire(m.Author),
		TicketTemplate: optStringPatchFromWire(m.TicketTemplate),
		Files:          attachmentsPatchFromWire(m.Files),
		Flag:           stringPatchFromWire(m.Flag),
		Healthscript:   optStringPatchFromWire(m.Healthscript),
		Points:         optInt64PatchFromWire(m.Points),
		ScoreType:      optStringPatchFromWire(m.ScoreType),
	}
}

func authorPatchToWire(p challenge.AuthorPatch) *AuthorPatch {
	return &AuthorPatch{
		Name:      stringPatchToWire(p.Name),
		AvatarURL: stringPatchToWire(p.AvatarURL),
		DiscordID: stringPatchToWire(p.DiscordID),
	}
}

func authorPatchFromWire(m *AuthorPatch) challenge.AuthorPatch {
	if m == nil {
		return challenge.AuthorPatch{}
	}
	return challenge.AuthorPatch{
		Name:      stringPatchFromWire(m.Name),
		AvatarURL: stringPatchFromWire(m.AvatarURL),
		DiscordID: stringPatchFromWire(m.DiscordID),
	}
}

func categoryPatchToWire(p challenge.CategoryPatch) *CategoryPatch {
	return &CategoryPatch{
		Name:  stringPatchToWire(p.Name),
		Color: stringPatchToWire(p.Color),
	}
}

func categoryPatchFromWire(m *CategoryPatch) challenge.CategoryPatch {
	if m == nil {
		return challenge.CategoryPatch{}
	}
	return challenge.CategoryPatch{
		Name:  stringPatchFromWire(m.Name),
		Color: stringPatchFromWire(m.Color),
	}
}

func stringPatchToWire(p *challenge.FieldPatch[string]) *StringPatch {
	if p == nil {
		return nil
	}
	return &StringPatch{Old: p.Old, New: p.New}
}

func stringPatchFromWire(m *StringPatch) *challenge.FieldPatch[string] {
	if m == nil {
		return nil
	}
	return &challenge.FieldPatch[string]{Old: m.Old, New: m.New}
}

func optStringPatchToWire(p *challenge.FieldPatch[*string]) *OptionalStringPatch {
	if p == nil {
		return nil
	}
	return &OptionalStringPatch{Old: cloneOpt(p.Old), New: cloneOpt(p.New)}
}

func optStringPatchFromWire(m *OptionalStringPatch) *challenge.FieldPatch[*string] {
	if m == nil {
		return nil
	}
	return &challenge.FieldPatch[*string]{Old: cloneOpt(m.Old), New: cloneOpt(m.New)}
}

func optInt64PatchToWire(p *challenge.FieldPatch[*int64]) *OptionalInt64Patch {
	if p == nil {
		return nil
	}
	return &OptionalInt64Patch{Old: cloneOpt(p.Old), New: cloneOpt(p.New)}
}

func optInt64PatchFromWire(m *OptionalInt64Patch) *challenge.FieldPatch[*int64] {
	if m == nil {
		return nil
	}
	return &challenge.FieldPatch[*int64]{Old: cloneOpt(m.Old), New: cloneOpt(m.New)}
}

func attachmentsPatchToWire(p *challenge.FieldPatch[[]challenge.Attachment]) *ChallengeAttachmentsPatch {
	if p == nil {
		return nil
	}
	return &ChallengeAttachmentsPatch{
		Old: attachmentsToWire(p.Old),
		New: attachmentsToWire(p.New),
	}
}

func attachmentsPatchFromWire(m *ChallengeAttachmentsPatch) *challenge.FieldPatch[[]challenge.Attachment] {
	if m == nil {
		return nil
	}
	return &challenge.FieldPatch[[]challenge.Attachment]{
		Old: attachmentsFromWire(m.Old),
		New: attachmentsFromWire(m.New),
	}
}

// cloneOpt copies an optional scalar so converted values never alias
// their source.
func cloneOpt[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
