package lexicon

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// GetLanguage returns a stored language.
func (s *Service) GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("language_id", "required")
	}
	return s.repo.GetLanguage(ctx, id)
}

// ListLanguages returns stored languages, newest first.
func (s *Service) ListLanguages(ctx context.Context, input ListInput) ([]domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	langs, err := s.repo.ListLanguages(ctx, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

// ListLexemes returns a page of a language's vocabulary in generation order.
// Returns domain.ErrNotFound for an unknown language.
func (s *Service) ListLexemes(ctx context.Context, input ListLexemesInput) ([]domain.Lexeme, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetLanguage(ctx, input.LanguageID); err != nil {
		return nil, err
	}

	lexemes, err := s.repo.ListLexemes(ctx, input.LanguageID, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list lexemes: %w", err)
	}
	return lexemes, nil
}
