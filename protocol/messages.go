// Package protocol defines the wire contract for the Bastion sync
// service: the message types from sync.proto, a hand-written protobuf
// binary encoding for them, and the gRPC service plumbing.
//
// The encoding is written directly against protowire rather than
// generated, so sync.proto stays the contract document and this package
// stays free of a protoc build step. Marshaling is deterministic: map
// entries are emitted in sorted key order.
package protocol

// Message is implemented by every wire type in this package.
type Message interface {
	marshalAppend(b []byte) []byte
	unmarshal(b []byte) error
}

// Empty is the empty request/response message.
type Empty struct{}

// PingRequest asks the server to echo back a greeting.
type PingRequest struct {
	Name string
}

// PingReply is the server's greeting.
type PingReply struct {
	Message string
}

// ChallengeData is one complete content snapshot on the wire.
type ChallengeData struct {
	Challenges map[string]*Challenge
	Categories map[string]*Category
	Authors    map[string]*Author
}

// Challenge mirrors challenge.Challenge on the wire.
type Challenge struct {
	Name           string
	Description    string
	Category       string
	Author         string
	TicketTemplate *string
	Files          []*ChallengeAttachment
	Flag           string
	Healthscript   *string
	Points         *int64
	ScoreType      *string
}

// ChallengeAttachment is a named attachment URL.
type ChallengeAttachment struct {
	Name string
	URL  string
}

// Category mirrors challenge.Category on the wire.
type Category struct {
	Name  string
	Color string
}

// Author mirrors challenge.Author on the wire.
type Author struct {
	Name      string
	AvatarURL string
	DiscordID string
}

// StringPatch records an old/new pair for a required string field.
type StringPatch struct {
	Old string
	New string
}

// OptionalStringPatch records an old/new pair for an optional string field.
type OptionalStringPatch struct {
	Old *string
	New *string
}

// OptionalInt64Patch records an old/new pair for an optional int64 field.
type OptionalInt64Patch struct {
	Old *int64
	New *int64
}

// ChallengeAttachmentsPatch records an old/new pair for an attachment list.
type ChallengeAttachmentsPatch struct {
	Old []*ChallengeAttachment
	New []*ChallengeAttachment
}

// ChallengePatch carries one optional field patch per challenge field.
type ChallengePatch struct {
	Name           *StringPatch
	Description    *StringPatch
	Category       *StringPatch
	Author         *StringPatch
	TicketTemplate *OptionalStringPatch
	Files          *ChallengeAttachmentsPatch
	Flag           *StringPatch
	Healthscript   *OptionalStringPatch
	Points         *OptionalInt64Patch
	ScoreType      *OptionalStringPatch
}

// AuthorPatch carries one optional field patch per author field.
type AuthorPatch struct {
	Name      *StringPatch
	AvatarURL *StringPatch
	DiscordID *StringPatch
}

// CategoryPatch carries one optional field patch per category field.
type CategoryPatch struct {
	Name  *StringPatch
	Color *StringPatch
}

// PatchChallenge edits the challenge at ID.
type PatchChallenge struct {
	ID    string
	Patch *ChallengePatch
}

// DeleteChallenge removes the challenge at ID.
type DeleteChallenge struct {
	ID string
}

// CreateChallenge adds a challenge under ID.
type CreateChallenge struct {
	ID    string
	Value *Challenge
}

// PatchAuthor edits the author at ID.
type PatchAuthor struct {
	ID    string
	Patch *AuthorPatch
}

// DeleteAuthor removes the author at ID.
type DeleteAuthor struct {
	ID string
}

// CreateAuthor adds an author under ID.
type CreateAuthor struct {
	ID    string
	Value *Author
}

// PatchCategory edits the category at ID.
type PatchCategory struct {
	ID    string
	Patch *CategoryPatch
}

// DeleteCategory removes the category at ID.
type DeleteCategory struct {
	ID string
}

// CreateCategory adds a category under ID.
type CreateCategory struct {
	ID    string
	Value *Category
}

// ChallengeDataPatchAction is the oneof wrapper from sync.proto.
// Exactly one field is non-nil on a well-formed action.
type ChallengeDataPatchAction struct {
	PatchChallenge  *PatchChallenge
	DeleteChallenge *DeleteChallenge
	CreateChallenge *CreateChallenge
	PatchAuthor     *PatchAuthor
	DeleteAuthor    *DeleteAuthor
	CreateAuthor    *CreateAuthor
	PatchCategory   *PatchCategory
	DeleteCategory  *DeleteCategory
	CreateCategory  *CreateCategory
}

// ChallengeDataPatch is the ordered action list returned by DiffChallenges.
type ChallengeDataPatch struct {
	Actions []*ChallengeDataPatchAction
}

// GetAttachmentByHashRequest looks up an upload by content hash.
type GetAttachmentByHashRequest struct {
	Hash string
}

// GetAttachmentByHashReply carries the upload URL, or nil when the hash
// has no known upload.
type GetAttachmentByHashReply struct {
	URL *string
}
