package middleware

import (
	"context"

	"github.com/google/uuid"
)

type requestInfoKey struct{}

// requestInfo is filled in by inner middleware and read by Logger once the
// handler returns.
type requestInfo struct {
	userID string
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func recordUser(ctx context.Context, userID uuid.UUID) {
	if info, ok := ctx.Value(requestInfoKey{}).(*requestInfo); ok {
		info.userID = userID.String()
	}
}
