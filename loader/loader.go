// Package loader turns an authored content directory into a challenge
// snapshot: it reads loader.yaml and every challenge.yaml beneath the
// root, renders descriptions to HTML, and resolves local attachment
// files to durable upload URLs.
package loader

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bastionctf/bastion/attach"
	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
)

// LoaderFileName is the root manifest declaring authors and categories.
const LoaderFileName = "loader.yaml"

// ChallengeFileName marks a directory as one challenge.
const ChallengeFileName = "challenge.yaml"

// Loader builds challenge snapshots from a content directory.
type Loader struct {
	resolver *attach.Resolver
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// New returns a Loader that resolves file attachments through resolver.
func New(resolver *attach.Resolver, logger *zap.SugaredLogger) *Loader {
	return &Loader{
		resolver: resolver,
		validate: validator.New(),
		logger:   logger,
	}
}

// Load reads the content directory rooted at root and returns the
// snapshot it describes. The snapshot is fully validated: references
// resolve, discord ids are well formed, and every local attachment has
// a durable upload.
func (l *Loader) Load(ctx context.Context, root string) (challenge.Data, error) {
	manifest, err := l.loadManifest(filepath.Join(root, LoaderFileName))
	if err != nil {
		return challenge.Data{}, err
	}

	paths, err := findChallengeFiles(root)
	if err != nil {
		return challenge.Data{}, err
	}
	l.logger.Debugw("Discovered challenge files", "root", root, "count", len(paths))

	data := challenge.Data{
		Challenges: make(map[string]challenge.Challenge, len(paths)),
		Categories: make(map[string]challenge.Category, len(manifest.Categories)),
		Authors:    make(map[string]challenge.Author, len(manifest.Authors)),
	}

	for _, a := range manifest.Authors {
		if _, ok := data.Authors[a.StableID]; ok {
			return challenge.Data{}, errors.Newf("duplicate author stable_id %q in %s", a.StableID, LoaderFileName)
		}
		data.Authors[a.StableID] = challenge.Author{
			Name:      orStableID(a.Name, a.StableID),
			AvatarURL: a.Avatar,
			DiscordID: strconv.FormatUint(a.DiscordID, 10),
		}
	}
	for _, c := range manifest.Categories {
		if _, ok := data.Categories[c.StableID]; ok {
			return challenge.Data{}, errors.Newf("duplicate category stable_id %q in %s", c.StableID, LoaderFileName)
		}
		data.Categories[c.StableID] = challenge.Category{
			Name:  orStableID(c.Name, c.StableID),
			Color: c.Color,
		}
	}

	for _, path := range paths {
		c, stableID, err := l.loadChallenge(ctx, path)
		if err != nil {
			return challenge.Data{}, err
		}
		if _, ok := data.Challenges[stableID]; ok {
			return challenge.Data{}, errors.Newf("duplicate challenge stable_id %q at %s", stableID, path)
		}
		data.Challenges[stableID] = c
	}

	if err := challenge.Validate(data); err != nil {
		return challenge.Data{}, err
	}
	return data, nil
}

func (l *Loader) loadManifest(path string) (LoaderYaml, error) {
	var manifest LoaderYaml
	if err := parseStrict(path, &manifest); err != nil {
		return LoaderYaml{}, err
	}
	if err := l.validate.Struct(manifest); err != nil {
		return LoaderYaml{}, errors.Wrapf(err, "invalid %s", path)
	}
	return manifest, nil
}

func (l *Loader) loadChallenge(ctx context.Context, path string) (challenge.Challenge, string, error) {
	var cy ChallengeYaml
	if err := parseStrict(path, &cy); err != nil {
		return challenge.Challenge{}, "", err
	}
	if err := l.validate.Struct(cy); err != nil {
		return challenge.Challenge{}, "", errors.Wrapf(err, "invalid %s", path)
	}

	specs := make([]attach.Spec, 0, len(cy.Files))
	for i, f := range cy.Files {
		if (f.Src == "") == (f.URL == "") {
			return challenge.Challenge{}, "", errors.Newf(
				"challenge %q file %d: exactly one of src or url must be set", cy.StableID, i)
		}
		specs = append(specs, attach.Spec{Src: f.Src, URL: f.URL, Dst: f.Dst})
	}
	files, err := l.resolver.Resolve(ctx, filepath.Dir(path), specs)
	if err != nil {
		return challenge.Challenge{}, "", errors.Wrapf(err, "challenge %q", cy.StableID)
	}

	description, err := renderMarkdown(cy.Description)
	if err != nil {
		return challenge.Challenge{}, "", errors.Wrapf(err, "challenge %q", cy.StableID)
	}

	return challenge.Challenge{
		Name:           orStableID(cy.Name, cy.StableID),
		Description:    description,
		Category:       cy.Category,
		Author:         cy.Author,
		TicketTemplate: cy.TicketTemplate,
		Files:          files,
		Flag:           cy.Flag,
		Healthscript:   cy.Healthscript,
		Points:         cy.Points,
		ScoreType:      cy.ScoreType,
	}, cy.StableID, nil
}

// findChallengeFiles walks root and returns every challenge.yaml in
// lexical order.
func findChallengeFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == ChallengeFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", root)
	}
	return paths, nil
}

// parseStrict decodes a YAML file, rejecting unknown keys so typos in
// authored content fail loudly.
func parseStrict(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

func orStableID(name *string, stableID string) string {
	if name != nil {
		return *name
	}
	return stableID
}
