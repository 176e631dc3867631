package lexicon

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/phonology"
)

// GenerateInput holds the parameters for generating a language.
type GenerateInput struct {
	Seed    phonology.Seed
	Options phonology.Options
	Words   int
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.Words < 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "must be non-negative"})
	}
	if i.Words > MaxWords {
		errs = append(errs, domain.FieldError{Field: "words", Message: fmt.Sprintf("max %d", MaxWords)})
	}

	if err := i.Options.Validate(); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		errs = append(errs, verr.Errors...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination parameters.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return DefaultLimit
	}
	return i.Limit
}

// ListLexemesInput selects a page of one language's lexemes.
type ListLexemesInput struct {
	LanguageID uuid.UUID
	ListInput
}

// Validate checks all fields and collects all errors.
func (i ListLexemesInput) Validate() error {
	var errs []domain.FieldError
	if i.LanguageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	if err := i.ListInput.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr.Errors...)
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
