// Package ctxutil carries per-run identifiers through a context so log
// records from concurrent generations can be told apart.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey    ctxKey = "run_id"
	languageKey ctxKey = "language_index"
)

// WithRunID stores the ID of one CLI invocation in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithLanguageIndex stores the zero-based position of the language being
// generated within its run.
func WithLanguageIndex(ctx context.Context, i int) context.Context {
	return context.WithValue(ctx, languageKey, i)
}

// LanguageIndexFromCtx extracts the language index from the context.
// Returns -1 if absent.
func LanguageIndexFromCtx(ctx context.Context) int {
	i, ok := ctx.Value(languageKey).(int)
	if !ok {
		return -1
	}
	return i
}
