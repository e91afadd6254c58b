// Package session carries the authenticated caller of a request through its context.
package session

import (
	"context"
	"wallet-ledger/dto"
)

type contextKey struct{}

// With returns a copy of ctx holding s
func With(ctx context.Context, s dto.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// From returns the session stored in ctx, if any
func From(ctx context.Context) (dto.Session, bool) {
	s, ok := ctx.Value(contextKey{}).(dto.Session)
	return s, ok
}
