package lexicon

import (
	"context"
	"fmt"
	"log/slog"
)

// CreateLanguage generates a language like Generate and stores it together
// with its lexemes in one transaction.
func (s *Service) CreateLanguage(ctx context.Context, input GenerateInput) (*Result, error) {
	res, err := s.Generate(ctx, input)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		stored, err := s.repo.CreateLanguage(ctx, res.Language)
		if err != nil {
			return fmt.Errorf("create language: %w", err)
		}
		res.Language = *stored

		if len(res.Lexemes) == 0 {
			return nil
		}
		n, err := s.repo.BulkInsertLexemes(ctx, res.Lexemes)
		if err != nil {
			return fmt.Errorf("insert lexemes: %w", err)
		}
		if n != len(res.Lexemes) {
			return fmt.Errorf("insert lexemes: wrote %d of %d rows", n, len(res.Lexemes))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.With(runAttrs(ctx)...).InfoContext(ctx, "language created",
		slog.String("language_id", res.Language.ID.String()),
		slog.String("name", res.Language.Name),
		slog.Int("lexemes", len(res.Lexemes)),
	)

	return res, nil
}
