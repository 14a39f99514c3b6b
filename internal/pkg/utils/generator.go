package utils

import (
	"context"

	"smartrx-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// WithRequestID returns ctx carrying a request id, generating one when ctx
// has none yet.
func WithRequestID(ctx context.Context) (context.Context, string) {
	if requestID := GetRequestID(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := GenerateRequestID()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}
