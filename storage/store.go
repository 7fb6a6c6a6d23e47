// Package storage materializes challenge content snapshots from SQLite.
package storage

import (
	"context"
	"database/sql"
	"strconv"

	"go.uber.org/zap"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
)

// Store reads challenge content from the database opened by db.Open.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore returns a Store over db.
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{db: db, logger: logger}
}

// GetChallenges materializes the complete current snapshot.
func (s *Store) GetChallenges(ctx context.Context) (challenge.Data, error) {
	data := challenge.Data{
		Challenges: make(map[string]challenge.Challenge),
		Categories: make(map[string]challenge.Category),
		Authors:    make(map[string]challenge.Author),
	}

	if err := s.loadCategories(ctx, data.Categories); err != nil {
		return challenge.Data{}, err
	}
	if err := s.loadAuthors(ctx, data.Authors); err != nil {
		return challenge.Data{}, err
	}
	if err := s.loadChallenges(ctx, data.Challenges); err != nil {
		return challenge.Data{}, err
	}
	if err := s.loadAttachments(ctx, data.Challenges); err != nil {
		return challenge.Data{}, err
	}
	return data, nil
}

func (s *Store) loadCategories(ctx context.Context, out map[string]challenge.Category) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, color FROM categories")
	if err != nil {
		return errors.Wrap(err, "query categories")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var c challenge.Category
		if err := rows.Scan(&id, &c.Name, &c.Color); err != nil {
			return errors.Wrap(err, "scan category")
		}
		out[id] = c
	}
	return errors.Wrap(rows.Err(), "iterate categories")
}

func (s *Store) loadAuthors(ctx context.Context, out map[string]challenge.Author) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, avatar_url, discord_id FROM authors")
	if err != nil {
		return errors.Wrap(err, "query authors")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var a challenge.Author
		var discordID int64
		if err := rows.Scan(&id, &a.Name, &a.AvatarURL, &discordID); err != nil {
			return errors.Wrap(err, "scan author")
		}
		a.DiscordID = strconv.FormatInt(discordID, 10)
		out[id] = a
	}
	return errors.Wrap(rows.Err(), "iterate authors")
}

func (s *Store) loadChallenges(ctx context.Context, out map[string]challenge.Challenge) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, category_id, author_id,
		ticket_template, flag, healthscript, points, score_type FROM challenges`)
	if err != nil {
		return errors.Wrap(err, "query challenges")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var c challenge.Challenge
		var ticketTemplate, healthscript, scoreType sql.NullString
		var points sql.NullInt64
		if err := rows.Scan(&id, &c.Name, &c.Description, &c.Category, &c.Author,
			&ticketTemplate, &c.Flag, &healthscript, &points, &scoreType); err != nil {
			return errors.Wrap(err, "scan challenge")
		}
		if ticketTemplate.Valid {
			c.TicketTemplate = &ticketTemplate.String
		}
		if healthscript.Valid {
			c.Healthscript = &healthscript.String
		}
		if points.Valid {
			c.Points = &points.Int64
		}
		if scoreType.Valid {
			c.ScoreType = &scoreType.String
		}
		out[id] = c
	}
	return errors.Wrap(rows.Err(), "iterate challenges")
}

func (s *Store) loadAttachments(ctx context.Context, challenges map[string]challenge.Challenge) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT challenge_id, name, url FROM challenge_attachments ORDER BY challenge_id, position")
	if err != nil {
		return errors.Wrap(err, "query attachments")
	}
	defer rows.Close()

	for rows.Next() {
		var challengeID string
		var a challenge.Attachment
		if err := rows.Scan(&challengeID, &a.Name, &a.URL); err != nil {
			return errors.Wrap(err, "scan attachment")
		}
		c, ok := challenges[challengeID]
		if !ok {
			// Enforced by foreign keys; tolerate rather than fail the snapshot.
			s.logger.Warnw("Attachment references unknown challenge", "challenge_id", challengeID)
			continue
		}
		c.Files = append(c.Files, a)
		challenges[challengeID] = c
	}
	return errors.Wrap(rows.Err(), "iterate attachments")
}

// AttachmentURLByHash returns the upload URL for a content hash, or
// errors.ErrNotFound when the hash has no known upload.
func (s *Store) AttachmentURLByHash(ctx context.Context, hash string) (string, error) {
	var url string
	err := s.db.QueryRowContext(ctx,
		"SELECT url FROM attachment_uploads WHERE hash = ?", hash).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errors.Mark(errors.Newf("no upload for hash %s", hash), errors.ErrNotFound)
	}
	if err != nil {
		return "", errors.Wrap(err, "query attachment upload")
	}
	return url, nil
}

// RecordUpload stores (or refreshes) the durable URL for a content hash.
func (s *Store) RecordUpload(ctx context.Context, hash, url string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO attachment_uploads (hash, url) VALUES (?, ?) ON CONFLICT(hash) DO UPDATE SET url = excluded.url",
		hash, url)
	return errors.Wrap(err, "record upload")
}

// Stats summarizes table row counts for operator tooling.
type Stats struct {
	Challenges  int
	Categories  int
	Authors     int
	Attachments int
	Uploads     int
}

// GetStats counts rows in each content table.
func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	for _, c := range []struct {
		table string
		dst   *int
	}{
		{"challenges", &stats.Challenges},
		{"categories", &stats.Categories},
		{"authors", &stats.Authors},
		{"challenge_attachments", &stats.Attachments},
		{"attachment_uploads", &stats.Uploads},
	} {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return Stats{}, errors.Wrapf(err, "count %s", c.table)
		}
	}
	return stats, nil
}
