package challenge

// FieldPatch records the old and new values of one field that differs
// between two snapshots of the same entity.
type FieldPatch[T any] struct {
	Old T
	New T
}

// ChallengePatch carries one optional FieldPatch per comparable field.
// A nil field means "unchanged"; a patch with every field nil is never
// emitted.
type ChallengePatch struct {
	Name           *FieldPatch[string]
	Description    *FieldPatch[string]
	Category       *FieldPatch[string]
	Author         *FieldPatch[string]
	TicketTemplate *FieldPatch[*string]
	Files          *FieldPatch[[]Attachment]
	Flag           *FieldPatch[string]
	Healthscript   *FieldPatch[*string]
	Points         *FieldPatch[*int64]
	ScoreType      *FieldPatch[*string]
}

// HasChange reports whether any field patch is populated.
func (p ChallengePatch) HasChange() bool {
	return p.Name != nil ||
		p.Description != nil ||
		p.Category != nil ||
		p.Author != nil ||
		p.TicketTemplate != nil ||
		p.Files != nil ||
		p.Flag != nil ||
		p.Healthscript != nil ||
		p.Points != nil ||
		p.ScoreType != nil
}

// AuthorPatch carries one optional FieldPatch per comparable field.
type AuthorPatch struct {
	Name      *FieldPatch[string]
	AvatarURL *FieldPatch[string]
	DiscordID *FieldPatch[string]
}

// HasChange reports whether any field patch is populated.
func (p AuthorPatch) HasChange() bool {
	return p.Name != nil || p.AvatarURL != nil || p.DiscordID != nil
}

// CategoryPatch carries one optional FieldPatch per comparable field.
type CategoryPatch struct {
	Name  *FieldPatch[string]
	Color *FieldPatch[string]
}

// HasChange reports whether any field patch is populated.
func (p CategoryPatch) HasChange() bool {
	return p.Name != nil || p.Color != nil
}

// Action is the closed set of edit operations a Patch is made of.
// Exactly nine concrete types implement it: Create/Patch/Delete for
// each of Challenge, Author, Category.
type Action interface {
	isAction()
}

// CreateChallenge adds a challenge under a new stable id.
type CreateChallenge struct {
	ID    string
	Value Challenge
}

// PatchChallenge edits fields of the challenge at ID.
type PatchChallenge struct {
	ID    string
	Patch ChallengePatch
}

// DeleteChallenge removes the challenge at ID.
type DeleteChallenge struct {
	ID string
}

// CreateAuthor adds an author under a new stable id.
type CreateAuthor struct {
	ID    string
	Value Author
}

// PatchAuthor edits fields of the author at ID.
type PatchAuthor struct {
	ID    string
	Patch AuthorPatch
}

// DeleteAuthor removes the author at ID.
type DeleteAuthor struct {
	ID string
}

// CreateCategory adds a category under a new stable id.
type CreateCategory struct {
	ID    string
	Value Category
}

// PatchCategory edits fields of the category at ID.
type PatchCategory struct {
	ID    string
	Patch CategoryPatch
}

// DeleteCategory removes the category at ID.
type DeleteCategory struct {
	ID string
}

func (CreateChallenge) isAction() {}
func (PatchChallenge) isAction()  {}
func (DeleteChallenge) isAction() {}
func (CreateAuthor) isAction()    {}
func (PatchAuthor) isAction()     {}
func (DeleteAuthor) isAction()    {}
func (CreateCategory) isAction()  {}
func (PatchCategory) isAction()   {}
func (DeleteCategory) isAction()  {}

// Patch is the ordered list of actions transforming one snapshot into
// another. It is advisory: nothing in Bastion applies it automatically.
type Patch struct {
	Actions []Action
}

// Empty reports whether the patch contains no actions.
func (p Patch) Empty() bool {
	return len(p.Actions) == 0
}
