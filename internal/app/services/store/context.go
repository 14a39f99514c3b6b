package store

import (
	"context"

	"smartrx-client/internal/pkg/constvars"
	"smartrx-client/internal/pkg/exceptions"
)

func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_APP_STORE_KEY, s)
}

// FromContext returns the store attached by NewContext.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(constvars.CONTEXT_APP_STORE_KEY).(*Store)
	if !ok || s == nil {
		return nil, exceptions.ErrStoreNotInContext
	}
	return s, nil
}
