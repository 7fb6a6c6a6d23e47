package sync

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/bastionctf/bastion/errors"
	"github.com/bastionctf/bastion/protocol"
)

// Server hosts the Sync service over gRPC.
type Server struct {
	service *Service
	keys    []string
	logger  *zap.SugaredLogger
}

// NewServer wraps service with bearer-key authentication. At least one
// key must be configured; an open listener would hand out flags.
func NewServer(service *Service, keys []string, logger *zap.SugaredLogger) (*Server, error) {
	if len(keys) == 0 {
		return nil, errors.New("no admin api keys configured")
	}
	return &Server{service: service, keys: keys, logger: logger}, nil
}

// Serve listens on addr until ctx is cancelled, then stops gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}

	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(protocol.Codec{}),
		grpc.ChainUnaryInterceptor(
			s.logInterceptor(),
			UnaryAuthInterceptor(s.keys),
		),
	)
	protocol.RegisterSyncServer(grpcServer, s.service)

	s.logger.Infow("Starting sync server", "address", listener.Addr().String())

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down sync server")
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(listener); err != nil {
		return errors.Wrap(err, "sync server error")
	}
	return nil
}

func (s *Server) logInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			s.logger.Warnw("RPC failed", "method", info.FullMethod, "error", err)
		} else {
			s.logger.Debugw("RPC handled", "method", info.FullMethod)
		}
		return resp, err
	}
}
