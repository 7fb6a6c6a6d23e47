package sync

import (
	"context"
	"crypto/subtle"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const bearerPrefix = "Bearer "

// validateKey performs constant-time comparison of API keys. All bytes
// are compared regardless of match status to prevent timing attacks.
func validateKey(provided, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(stored)) == 1
}

// UnaryAuthInterceptor rejects calls that do not carry a configured
// admin key as "authorization: Bearer <key>" metadata. Every configured
// key is checked on every call so rejection time does not depend on
// which key almost matched.
func UnaryAuthInterceptor(keys []string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization")
		}
		token, found := strings.CutPrefix(values[0], bearerPrefix)
		if !found {
			return nil, status.Error(codes.Unauthenticated, "malformed authorization")
		}

		authorized := false
		for _, key := range keys {
			if validateKey(token, key) {
				authorized = true
			}
		}
		if !authorized {
			return nil, status.Error(codes.Unauthenticated, "invalid api key")
		}
		return handler(ctx, req)
	}
}

// WithBearerToken returns a child context carrying the admin key the
// way UnaryAuthInterceptor expects it. Used by clients.
func WithBearerToken(ctx context.Context, key string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", bearerPrefix+key)
}
