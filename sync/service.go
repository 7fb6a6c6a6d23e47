// Package sync implements the Sync gRPC service: the authoritative
// snapshot endpoint, the server-side diff, and attachment lookup by
// content hash.
package sync

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/protocol"
)

// Store is the persistence surface the service reads from.
type Store interface {
	// GetChallenges materializes the current content snapshot.
	GetChallenges(ctx context.Context) (challenge.Data, error)
	// AttachmentURLByHash returns the upload URL for a content hash,
	// or errors.ErrNotFound when the hash has no known upload.
	AttachmentURLByHash(ctx context.Context, hash string) (string, error)
}

// Service implements protocol.SyncServer against a Store.
type Service struct {
	store  Store
	opts   challenge.Options
	logger *zap.SugaredLogger
}

var _ protocol.SyncServer = (*Service)(nil)

// NewService returns a Service using opts for every diff it computes.
func NewService(store Store, opts challenge.Options, logger *zap.SugaredLogger) *Service {
	return &Service{store: store, opts: opts, logger: logger}
}

// Ping echoes a greeting so clients can verify connectivity and auth.
func (s *Service) Ping(_ context.Context, req *protocol.PingRequest) (*protocol.PingReply, error) {
	name := req.Name
	if name == "" {
		name = "anonymous"
	}
	return &protocol.PingReply{Message: "Hello " + name + "!"}, nil
}

// GetChallenges returns the server's current content snapshot.
func (s *Service) GetChallenges(ctx context.Context, _ *protocol.Empty) (*protocol.ChallengeData, error) {
	data, err := s.store.GetChallenges(ctx)
	if err != nil {
		s.logger.Errorw("Failed to load challenge snapshot", "error", err)
		return nil, status.Error(codes.Internal, "failed to load challenges")
	}
	return protocol.DataToWire(data), nil
}

// DiffChallenges diffs the server's current snapshot against the
// submitted target and returns the patch that would reconcile them.
// The patch is advisory; nothing is applied.
func (s *Service) DiffChallenges(ctx context.Context, req *protocol.ChallengeData) (*protocol.ChallengeDataPatch, error) {
	old, err := s.store.GetChallenges(ctx)
	if err != nil {
		s.logger.Errorw("Failed to load challenge snapshot", "error", err)
		return nil, status.Error(codes.Internal, "failed to load challenges")
	}

	patch := challenge.DiffWithOptions(old, protocol.DataFromWire(req), s.opts)
	s.logger.Debugw("Computed challenge diff",
		"actions", len(patch.Actions),
		"include_scoring", s.opts.IncludeScoring)
	return protocol.PatchToWire(patch), nil
}

// GetAttachmentByHash looks up a durable upload URL by SHA-256. A miss
// is not an error: the reply simply carries no URL.
func (s *Service) GetAttachmentByHash(ctx context.Context, req *protocol.GetAttachmentByHashRequest) (*protocol.GetAttachmentByHashReply, error) {
	url, err := s.store.AttachmentURLByHash(ctx, req.Hash)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return &protocol.GetAttachmentByHashReply{}, nil
		}
		s.logger.Errorw("Attachment lookup failed", "hash", req.Hash, "error", err)
		return nil, status.Error(codes.Internal, "attachment lookup failed")
	}
	return &protocol.GetAttachmentByHashReply{URL: &url}, nil
}
