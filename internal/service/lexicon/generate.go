package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/phonology"
)

// Result is a generated language with its vocabulary.
type Result struct {
	Language domain.Language
	Lexemes  []domain.Lexeme
}

// Words returns the lexeme forms in vocabulary order.
func (r *Result) Words() []string {
	out := make([]string, len(r.Lexemes))
	for i, l := range r.Lexemes {
		out[i] = l.Form
	}
	return out
}

// Generate draws a language and input.Words words for it without storing
// anything. The words are the ones phonology.GenerateWords yields for the
// same seed and options; the name is drawn after them.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := phonology.NewGenerator(s.log, s.tables, input.Seed)

	lang, err := g.NewLanguage(input.Options)
	if err != nil {
		return nil, fmt.Errorf("new language: %w", err)
	}
	vocab, err := lang.Vocabulary(g.Rand(), input.Words)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}
	name, err := lang.Name(g.Rand())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res := &Result{
		Language: domain.Language{
			ID:         uuid.New(),
			Name:       name,
			Seed:       input.Seed.String(),
			Inventory:  lang.Inventory,
			NoConsLow:  input.Options.NoConsLow,
			NoConsHigh: input.Options.NoConsHigh,
			CreatedAt:  now,
		},
		Lexemes: make([]domain.Lexeme, len(vocab)),
	}
	for i, e := range vocab {
		res.Lexemes[i] = domain.Lexeme{
			ID:         uuid.New(),
			LanguageID: res.Language.ID,
			Concept:    e.Concept,
			Form:       e.Word,
			Position:   i,
			CreatedAt:  now,
		}
	}

	s.log.With(runAttrs(ctx)...).DebugContext(ctx, "language generated",
		slog.String("name", name),
		slog.String("pattern", lang.Pattern),
		slog.Int("words", len(vocab)),
	)

	return res, nil
}
