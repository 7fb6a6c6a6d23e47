package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
	bastiontesting "github.com/bastionctf/bastion/internal/testing"
)

func TestStoreAgainstSQLite(t *testing.T) {
	database := bastiontesting.CreateTestDB(t)
	store := NewStore(database, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO categories (id, name, color) VALUES ('pwn', 'Pwn', 'red')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO authors (id, name, avatar_url, discord_id)
		VALUES ('ava', 'Ava', 'https://a.example/ava.png', 12345)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO challenges (id, name, description, category_id, author_id, flag, points)
		VALUES ('heap', 'Heap', '<p>UAF</p>', 'pwn', 'ava', 'flag{heap}', 400)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO challenge_attachments (challenge_id, position, name, url) VALUES
		('heap', 1, 'libc.so.6', 'https://cdn.example/2'),
		('heap', 0, 'dist.tar.gz', 'https://cdn.example/1')`)
	require.NoError(t, err)

	data, err := store.GetChallenges(ctx)
	require.NoError(t, err)

	heap, ok := data.Challenges["heap"]
	require.True(t, ok)
	assert.Equal(t, "flag{heap}", heap.Flag)
	require.NotNil(t, heap.Points)
	assert.Equal(t, int64(400), *heap.Points)
	// Position, not insertion order, decides attachment order.
	assert.Equal(t, []challenge.Attachment{
		{Name: "dist.tar.gz", URL: "https://cdn.example/1"},
		{Name: "libc.so.6", URL: "https://cdn.example/2"},
	}, heap.Files)
	assert.Equal(t, "12345", data.Authors["ava"].DiscordID)

	// Upload lookup round-trip, including refresh on conflict.
	require.NoError(t, store.RecordUpload(ctx, "cafe", "https://cdn.example/old"))
	require.NoError(t, store.RecordUpload(ctx, "cafe", "https://cdn.example/new"))
	url, err := store.AttachmentURLByHash(ctx, "cafe")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/new", url)

	_, err = store.AttachmentURLByHash(ctx, "unknown")
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Challenges: 1, Categories: 1, Authors: 1, Attachments: 2, Uploads: 1}, stats)
}
