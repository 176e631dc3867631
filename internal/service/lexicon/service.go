// Package lexicon generates simulated languages with a vocabulary and
// stores them.
package lexicon

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/reftable"
	"github.com/heartmarshall/phonogen/pkg/ctxutil"
)

const (
	MaxWords     = 10000
	DefaultLimit = 100
	MaxLimit     = 1000
)

type lexiconRepo interface {
	CreateLanguage(ctx context.Context, lang domain.Language) (*domain.Language, error)
	BulkInsertLexemes(ctx context.Context, lexemes []domain.Lexeme) (int, error)
	GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListLanguages(ctx context.Context, limit, offset int) ([]domain.Language, error)
	ListLexemes(ctx context.Context, languageID uuid.UUID, limit, offset int) ([]domain.Lexeme, error)
	DeleteLanguagesBefore(ctx context.Context, threshold time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service generates languages and manages the stored lexicon.
type Service struct {
	repo   lexiconRepo
	tx     txManager
	tables *reftable.Tables
	log    *slog.Logger
}

// NewService creates a new lexicon service. repo and tx may be nil when the
// service is only used to Generate.
func NewService(
	log *slog.Logger,
	repo lexiconRepo,
	tx txManager,
	tables *reftable.Tables,
) *Service {
	return &Service{
		repo:   repo,
		tx:     tx,
		tables: tables,
		log:    log.With("service", "lexicon"),
	}
}

// runAttrs returns the run identifiers stored in ctx as log attributes.
func runAttrs(ctx context.Context) []any {
	var attrs []any
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	if i := ctxutil.LanguageIndexFromCtx(ctx); i >= 0 {
		attrs = append(attrs, slog.Int("language_index", i))
	}
	return attrs
}
