package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/internal/util"
)

func TestDataConversionRoundTrip(t *testing.T) {
	d := challenge.Data{
		Challenges: map[string]challenge.Challenge{
			"heap": {
				Name:           "Heap",
				Description:    "<p>Use after free.</p>",
				Category:       "pwn",
				Author:         "ava",
				TicketTemplate: util.Ptr("ticket {{id}}"),
				Files: []challenge.Attachment{
					{Name: "dist.tar.gz", URL: "https://cdn.example/1"},
				},
				Flag:         "flag{heap}",
				Healthscript: util.Ptr("exit 0"),
				Points:       util.Ptr(int64(400)),
				ScoreType:    util.Ptr("static"),
			},
		},
		Categories: map[string]challenge.Category{
			"pwn": {Name: "Pwn", Color: "red"},
		},
		Authors: map[string]challenge.Author{
			"ava": {Name: "Ava", AvatarURL: "https://a.example/ava.png", DiscordID: "12345"},
		},
	}

	assert.Equal(t, d, DataFromWire(DataToWire(d)))
}

func TestDataConversionDoesNotAlias(t *testing.T) {
	src := challenge.Challenge{Points: util.Ptr(int64(100))}
	wire := ChallengeToWire(src)
	*wire.Points = 999
	assert.Equal(t, int64(100), *src.Points)
}

func TestPatchConversionRoundTrip(t *testing.T) {
	p := challenge.Patch{Actions: []challenge.Action{
		challenge.DeleteChallenge{ID: "old"},
		challenge.CreateChallenge{ID: "new", Value: challenge.Challenge{Name: "New", Flag: "flag{n}"}},
		challenge.PatchChallenge{ID: "kept", Patch: challenge.ChallengePatch{
			Flag:         &challenge.FieldPatch[string]{Old: "flag{a}", New: "flag{b}"},
			Healthscript: &challenge.FieldPatch[*string]{Old: nil, New: util.Ptr("exit 0")},
			Files: &challenge.FieldPatch[[]challenge.Attachment]{
				Old: []challenge.Attachment{{Name: "v1.zip", URL: "https://cdn.example/1"}},
				New: []challenge.Attachment{{Name: "v2.zip", URL: "https://cdn.example/2"}},
			},
		}},
		challenge.CreateAuthor{ID: "bo", Value: challenge.Author{Name: "Bo", DiscordID: "67890"}},
		challenge.PatchAuthor{ID: "ava", Patch: challenge.AuthorPatch{
			DiscordID: &challenge.FieldPatch[string]{Old: "1", New: "2"},
		}},
		challenge.DeleteAuthor{ID: "cy"},
		challenge.CreateCategory{ID: "web", Value: challenge.Category{Name: "Web", Color: "blue"}},
		challenge.PatchCategory{ID: "pwn", Patch: challenge.CategoryPatch{
			Color: &challenge.FieldPatch[string]{Old: "red", New: "crimson"},
		}},
		challenge.DeleteCategory{ID: "misc"},
	}}

	got, err := PatchFromWire(PatchToWire(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPatchConversionSurvivesWire(t *testing.T) {
	p := challenge.Patch{Actions: []challenge.Action{
		challenge.PatchChallenge{ID: "x", Patch: challenge.ChallengePatch{
			Name: &challenge.FieldPatch[string]{Old: "A", New: "B"},
		}},
		challenge.DeleteCategory{ID: "misc"},
	}}

	b, err := Codec{}.Marshal(PatchToWire(p))
	require.NoError(t, err)
	decoded := new(ChallengeDataPatch)
	require.NoError(t, Codec{}.Unmarshal(b, decoded))

	got, err := PatchFromWire(decoded)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPatchFromWireRejectsEmptyAction(t *testing.T) {
	_, err := PatchFromWire(&ChallengeDataPatch{
		Actions: []*ChallengeDataPatchAction{{}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))

	_, err = PatchFromWire(&ChallengeDataPatch{
		Actions: []*ChallengeDataPatchAction{nil},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}

func TestDataFromWireHandlesNilMaps(t *testing.T) {
	d := DataFromWire(new(ChallengeData))
	assert.Empty(t, d.Challenges)
	assert.Empty(t, d.Categories)
	assert.Empty(t, d.Authors)
}
