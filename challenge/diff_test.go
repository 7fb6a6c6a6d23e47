package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastionctf/bastion/internal/util"
)

func testChallenge() Challenge {
	return Challenge{
		Name:        "Test challenge",
		Description: "Test",
		Category:    "abc",
		Author:      "john daker",
		Flag:        "bastion{abc}",
	}
}

func TestDiffIdentity(t *testing.T) {
	snapshots := []Data{
		{},
		{
			Challenges: map[string]Challenge{"test": testChallenge()},
			Categories: map[string]Category{"abc": {Name: "Abc", Color: "blue"}},
			Authors:    map[string]Author{"john daker": {Name: "John", AvatarURL: "https://a.example/j.png", DiscordID: "12345678"}},
		},
		{
			Challenges: map[string]Challenge{
				"full": {
					Name:           "Full",
					Description:    "<p>html</p>",
					Category:       "web",
					Author:         "jd",
					TicketTemplate: util.Ptr("template"),
					Files:          []Attachment{{Name: "a.zip", URL: "https://cdn.example/a.zip"}},
					Flag:           "bastion{x}",
					Healthscript:   util.Ptr("http GET :80"),
					Points:         util.Ptr(int64(500)),
					ScoreType:      util.Ptr("dynamic"),
				},
			},
		},
	}
	for _, s := range snapshots {
		assert.True(t, Diff(s, s).Empty())
	}
}

func TestDiffModifyChallengeFlag(t *testing.T) {
	old := Data{Challenges: map[string]Challenge{"test": testChallenge()}}

	modified := testChallenge()
	modified.Flag = "bastion{def}"
	new := Data{Challenges: map[string]Challenge{"test": modified}}

	patch := Diff(old, new)
	require.Len(t, patch.Actions, 1)

	action, ok := patch.Actions[0].(PatchChallenge)
	require.True(t, ok, "expected PatchChallenge, got %T", patch.Actions[0])
	assert.Equal(t, "test", action.ID)

	p := action.Patch
	require.NotNil(t, p.Flag)
	assert.Equal(t, "bastion{abc}", p.Flag.Old)
	assert.Equal(t, "bastion{def}", p.Flag.New)

	assert.Nil(t, p.Name)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Category)
	assert.Nil(t, p.Author)
	assert.Nil(t, p.TicketTemplate)
	assert.Nil(t, p.Files)
	assert.Nil(t, p.Healthscript)
}

func TestDiffChangeChallengeID(t *testing.T) {
	// Renaming a stable id is a delete plus a create, never a patch.
	old := Data{Challenges: map[string]Challenge{"test": testChallenge()}}
	new := Data{Challenges: map[string]Challenge{"quiz": testChallenge()}}

	patch := Diff(old, new)
	require.Len(t, patch.Actions, 2)

	del, ok := patch.Actions[0].(DeleteChallenge)
	require.True(t, ok, "expected DeleteChallenge, got %T", patch.Actions[0])
	assert.Equal(t, "test", del.ID)

	create, ok := patch.Actions[1].(CreateChallenge)
	require.True(t, ok, "expected CreateChallenge, got %T", patch.Actions[1])
	assert.Equal(t, "quiz", create.ID)
	assert.Equal(t, testChallenge(), create.Value)
}

func TestDiffAddChallengeCategoryAndAuthor(t *testing.T) {
	old := Data{}
	new := Data{
		Challenges: map[string]Challenge{
			"twoplustwo": {
				Name:        "2+2",
				Description: "solve it",
				Category:    "math",
				Author:      "jdaker",
				Files:       []Attachment{{Name: "equation.pdf", URL: "https://example.com/equation.pdf"}},
				Flag:        "bastion{abc}",
			},
		},
		Categories: map[string]Category{
			"math": {Name: "Mathematics", Color: "blue"},
		},
		Authors: map[string]Author{
			"jdaker": {Name: "John Daker", AvatarURL: "https://www.gravatar.com/avatar/23463b99?s=200", DiscordID: "12345678"},
		},
	}

	patch := Diff(old, new)
	require.Len(t, patch.Actions, 3)

	createChal, ok := patch.Actions[0].(CreateChallenge)
	require.True(t, ok, "expected CreateChallenge, got %T", patch.Actions[0])
	assert.Equal(t, "twoplustwo", createChal.ID)
	assert.Equal(t, new.Challenges["twoplustwo"], createChal.Value)

	createAuthor, ok := patch.Actions[1].(CreateAuthor)
	require.True(t, ok, "expected CreateAuthor, got %T", patch.Actions[1])
	assert.Equal(t, "jdaker", createAuthor.ID)
	assert.Equal(t, new.Authors["jdaker"], createAuthor.Value)

	createCat, ok := patch.Actions[2].(CreateCategory)
	require.True(t, ok, "expected CreateCategory, got %T", patch.Actions[2])
	assert.Equal(t, "math", createCat.ID)
	assert.Equal(t, new.Categories["math"], createCat.Value)
}

func TestDiffModifyAuthor(t *testing.T) {
	old := Data{
		Authors: map[string]Author{
			"jdaker": {Name: "John Daker", AvatarURL: "https://a.example/jd.png", DiscordID: "12345678"},
		},
	}
	new := Data{
		Authors: map[string]Author{
			"jdaker": {Name: "John Baker", AvatarURL: "https://a.example/jd.png", DiscordID: "87654321"},
		},
	}

	patch := Diff(old, new)
	require.Len(t, patch.Actions, 1)

	action, ok := patch.Actions[0].(PatchAuthor)
	require.True(t, ok, "expected PatchAuthor, got %T", patch.Actions[0])
	assert.Equal(t, "jdaker", action.ID)

	p := action.Patch
	require.NotNil(t, p.Name)
	assert.Equal(t, "John Daker", p.Name.Old)
	assert.Equal(t, "John Baker", p.Name.New)
	require.NotNil(t, p.DiscordID)
	assert.Equal(t, "12345678", p.DiscordID.Old)
	assert.Equal(t, "87654321", p.DiscordID.New)
	assert.Nil(t, p.AvatarURL)
}

func TestDiffDiscordIDRepresentation(t *testing.T) {
	// "012345" and "12345" denote the same snowflake; no patch.
	old := Data{Authors: map[string]Author{"a": {Name: "A", DiscordID: "012345"}}}
	new := Data{Authors: map[string]Author{"a": {Name: "A", DiscordID: "12345"}}}

	assert.True(t, Diff(old, new).Empty())
}

func TestDiffScoringPolicy(t *testing.T) {
	base := testChallenge()
	scored := testChallenge()
	scored.Points = util.Ptr(int64(500))
	scored.ScoreType = util.Ptr("dynamic")

	old := Data{Challenges: map[string]Challenge{"test": base}}
	new := Data{Challenges: map[string]Challenge{"test": scored}}

	// Default policy ignores scoring fields entirely.
	assert.True(t, Diff(old, new).Empty())

	// Opting in surfaces them as field patches.
	patch := DiffWithOptions(old, new, Options{IncludeScoring: true})
	require.Len(t, patch.Actions, 1)
	p := patch.Actions[0].(PatchChallenge).Patch
	require.NotNil(t, p.Points)
	assert.Nil(t, p.Points.Old)
	assert.Equal(t, int64(500), *p.Points.New)
	require.NotNil(t, p.ScoreType)
	assert.Nil(t, p.Flag)
}

func TestDiffOptionalFields(t *testing.T) {
	withTicket := testChallenge()
	withTicket.TicketTemplate = util.Ptr("ping {author}")

	old := Data{Challenges: map[string]Challenge{"test": testChallenge()}}
	new := Data{Challenges: map[string]Challenge{"test": withTicket}}

	patch := Diff(old, new)
	require.Len(t, patch.Actions, 1)
	p := patch.Actions[0].(PatchChallenge).Patch
	require.NotNil(t, p.TicketTemplate)
	assert.Nil(t, p.TicketTemplate.Old)
	require.NotNil(t, p.TicketTemplate.New)
	assert.Equal(t, "ping {author}", *p.TicketTemplate.New)
}

func TestDiffAttachments(t *testing.T) {
	withFile := testChallenge()
	withFile.Files = []Attachment{{Name: "dist.tar.gz", URL: "https://cdn.example/dist.tar.gz"}}

	renamed := testChallenge()
	renamed.Files = []Attachment{{Name: "handout.tar.gz", URL: "https://cdn.example/dist.tar.gz"}}

	old := Data{Challenges: map[string]Challenge{"test": withFile}}
	new := Data{Challenges: map[string]Challenge{"test": renamed}}

	patch := Diff(old, new)
	require.Len(t, patch.Actions, 1)
	p := patch.Actions[0].(PatchChallenge).Patch
	require.NotNil(t, p.Files)
	assert.Equal(t, withFile.Files, p.Files.Old)
	assert.Equal(t, renamed.Files, p.Files.New)
}

func TestDiffSymmetricDifferenceCompleteness(t *testing.T) {
	shared := testChallenge()
	old := Data{Challenges: map[string]Challenge{
		"only-old-a": testChallenge(),
		"only-old-b": testChallenge(),
		"shared":     shared,
	}}
	new := Data{Challenges: map[string]Challenge{
		"shared":     shared,
		"only-new-a": testChallenge(),
	}}

	patch := Diff(old, new)

	var deleted, created []string
	for _, a := range patch.Actions {
		switch a := a.(type) {
		case DeleteChallenge:
			deleted = append(deleted, a.ID)
		case CreateChallenge:
			created = append(created, a.ID)
		default:
			t.Fatalf("unexpected action %T", a)
		}
	}
	assert.ElementsMatch(t, []string{"only-old-a", "only-old-b"}, deleted)
	assert.ElementsMatch(t, []string{"only-new-a"}, created)
}

func TestDiffDeterministicOrdering(t *testing.T) {
	old := Data{Challenges: map[string]Challenge{
		"zeta": testChallenge(), "alpha": testChallenge(), "mid": testChallenge(),
	}}
	new := Data{Challenges: map[string]Challenge{
		"omega": testChallenge(), "beta": testChallenge(),
	}}

	first := Diff(old, new)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Diff(old, new))
	}

	// Deletes come from sorted old keys, creates from sorted new keys.
	var ids []string
	for _, a := range first.Actions {
		switch a := a.(type) {
		case DeleteChallenge:
			ids = append(ids, a.ID)
		case CreateChallenge:
			ids = append(ids, a.ID)
		}
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta", "beta", "omega"}, ids)
}

func TestDiffIsDirectional(t *testing.T) {
	old := Data{Categories: map[string]Category{"web": {Name: "Web", Color: "blue"}}}
	new := Data{Categories: map[string]Category{"web": {Name: "Web", Color: "red"}}}

	forward := Diff(old, new)
	backward := Diff(new, old)

	fp := forward.Actions[0].(PatchCategory).Patch.Color
	bp := backward.Actions[0].(PatchCategory).Patch.Color
	assert.Equal(t, "blue", fp.Old)
	assert.Equal(t, "red", fp.New)
	assert.Equal(t, "red", bp.Old)
	assert.Equal(t, "blue", bp.New)
}
