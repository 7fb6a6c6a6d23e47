package attach

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
)

// Spec is one attachment declaration from an authored challenge file.
// Exactly one of Src and URL is set: Src is a path relative to the
// challenge file's directory, URL is an externally hosted location used
// verbatim. Dst is the display name shown to players.
type Spec struct {
	Src string
	URL string
	Dst string
}

// Lookup answers whether a content hash has a known upload. The ok
// result distinguishes "never uploaded" from a transport failure.
type Lookup interface {
	AttachmentURLByHash(ctx context.Context, hash string) (url string, ok bool, err error)
}

// Resolver turns attachment specs into materialized attachments.
// Resolution is read-only: it never uploads; files must have been
// uploaded out-of-band before a sync run.
type Resolver struct {
	lookup Lookup
	logger *zap.SugaredLogger
}

// NewResolver creates a Resolver backed by the given hash lookup.
func NewResolver(lookup Lookup, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{
		lookup: lookup,
		logger: logger,
	}
}

// Resolve materializes specs into attachments. File-backed specs are
// read from disk under baseDir, hashed, and looked up; a missing upload
// fails the whole call with an error marked errors.ErrNotUploaded that
// names the source path and hash. URL specs pass through verbatim.
//
// Resolution is all-or-nothing: on any failure, including context
// cancellation between files, no partial result is returned.
func (r *Resolver) Resolve(ctx context.Context, baseDir string, specs []Spec) ([]challenge.Attachment, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	attachments := make([]challenge.Attachment, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "attachment resolution cancelled")
		}

		if spec.URL != "" {
			attachments = append(attachments, challenge.Attachment{Name: spec.Dst, URL: spec.URL})
			continue
		}

		path := filepath.Join(baseDir, spec.Src)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read attachment %s", path)
		}

		hash := HashBytes(data)
		url, ok, err := r.lookup.AttachmentURLByHash(ctx, hash)
		if err != nil {
			return nil, errors.Wrapf(err, "look up attachment %s by hash", path)
		}
		if !ok {
			err := errors.Newf("attachment %s (sha256 %s) has no upload; upload it first, then retry", path, hash)
			return nil, errors.Mark(err, errors.ErrNotUploaded)
		}

		r.logger.Debugw("Resolved attachment",
			"src", path,
			"hash", hash,
			"url", url,
		)
		attachments = append(attachments, challenge.Attachment{Name: spec.Dst, URL: url})
	}

	return attachments, nil
}
