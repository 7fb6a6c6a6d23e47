package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, zap.NewNop().Sugar()), mock
}

func expectEmptySnapshot(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT id, name, color FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color"}))
	mock.ExpectQuery("SELECT id, name, avatar_url, discord_id FROM authors").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "avatar_url", "discord_id"}))
	mock.ExpectQuery("SELECT id, name, description, category_id, author_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category_id",
			"author_id", "ticket_template", "flag", "healthscript", "points", "score_type"}))
	mock.ExpectQuery("SELECT challenge_id, name, url FROM challenge_attachments").
		WillReturnRows(sqlmock.NewRows([]string{"challenge_id", "name", "url"}))
}

func TestGetChallengesEmpty(t *testing.T) {
	store, mock := newMockStore(t)
	expectEmptySnapshot(mock)

	data, err := store.GetChallenges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Challenges)
	assert.Empty(t, data.Categories)
	assert.Empty(t, data.Authors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChallengesSnapshot(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, name, color FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color"}).
			AddRow("pwn", "Pwn", "red"))
	mock.ExpectQuery("SELECT id, name, avatar_url, discord_id FROM authors").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "avatar_url", "discord_id"}).
			AddRow("ava", "Ava", "https://a.example/ava.png", int64(12345)))
	mock.ExpectQuery("SELECT id, name, description, category_id, author_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category_id",
			"author_id", "ticket_template", "flag", "healthscript", "points", "score_type"}).
			AddRow("heap", "Heap", "<p>UAF</p>", "pwn", "ava", nil, "flag{heap}", "exit 0", int64(400), "static").
			AddRow("warmup", "Warmup", "", "pwn", "ava", "ticket {{id}}", "flag{w}", nil, nil, nil))
	mock.ExpectQuery("SELECT challenge_id, name, url FROM challenge_attachments").
		WillReturnRows(sqlmock.NewRows([]string{"challenge_id", "name", "url"}).
			AddRow("heap", "dist.tar.gz", "https://cdn.example/1").
			AddRow("heap", "libc.so.6", "https://cdn.example/2"))

	data, err := store.GetChallenges(context.Background())
	require.NoError(t, err)

	assert.Equal(t, challenge.Category{Name: "Pwn", Color: "red"}, data.Categories["pwn"])
	assert.Equal(t, "12345", data.Authors["ava"].DiscordID)

	heap := data.Challenges["heap"]
	assert.Nil(t, heap.TicketTemplate)
	require.NotNil(t, heap.Healthscript)
	assert.Equal(t, "exit 0", *heap.Healthscript)
	require.NotNil(t, heap.Points)
	assert.Equal(t, int64(400), *heap.Points)
	// Attachment order follows the stored position.
	assert.Equal(t, []challenge.Attachment{
		{Name: "dist.tar.gz", URL: "https://cdn.example/1"},
		{Name: "libc.so.6", URL: "https://cdn.example/2"},
	}, heap.Files)

	warmup := data.Challenges["warmup"]
	require.NotNil(t, warmup.TicketTemplate)
	assert.Equal(t, "ticket {{id}}", *warmup.TicketTemplate)
	assert.Nil(t, warmup.Points)
	assert.Nil(t, warmup.Files)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChallengesQueryFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT id, name, color FROM categories").
		WillReturnError(errors.New("disk io"))

	_, err := store.GetChallenges(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query categories")
}

func TestAttachmentURLByHash(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT url FROM attachment_uploads WHERE hash").
		WithArgs("cafe").
		WillReturnRows(sqlmock.NewRows([]string{"url"}).AddRow("https://cdn.example/cafe"))

	url, err := store.AttachmentURLByHash(context.Background(), "cafe")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/cafe", url)
}

func TestAttachmentURLByHashMiss(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT url FROM attachment_uploads WHERE hash").
		WithArgs("dead").
		WillReturnRows(sqlmock.NewRows([]string{"url"}))

	_, err := store.AttachmentURLByHash(context.Background(), "dead")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "dead")
}

func TestRecordUpload(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO attachment_uploads").
		WithArgs("cafe", "https://cdn.example/cafe").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.RecordUpload(context.Background(), "cafe", "https://cdn.example/cafe"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	store, mock := newMockStore(t)
	for _, n := range []int{3, 2, 1, 5, 4} {
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
	}

	stats, err := store.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Challenges: 3, Categories: 2, Authors: 1, Attachments: 5, Uploads: 4}, stats)
}
