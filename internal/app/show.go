package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/service/lexicon"
)

type lexiconReader interface {
	GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListLanguages(ctx context.Context, input lexicon.ListInput) ([]domain.Language, error)
	ListLexemes(ctx context.Context, input lexicon.ListLexemesInput) ([]domain.Lexeme, error)
}

// listLanguages prints every stored language, newest first, one per line.
func listLanguages(ctx context.Context, svc lexiconReader, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSEED\tCREATED")

	page := lexicon.ListInput{Limit: lexicon.MaxLimit}
	for {
		langs, err := svc.ListLanguages(ctx, page)
		if err != nil {
			return err
		}
		for _, l := range langs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Seed, l.CreatedAt.UTC().Format(time.RFC3339))
		}
		if len(langs) < page.Limit {
			break
		}
		page.Offset += len(langs)
	}
	return tw.Flush()
}

// showLanguage prints a stored language in the same layout as a freshly
// generated one.
func showLanguage(ctx context.Context, svc lexiconReader, rawID string, w io.Writer) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.NewValidationError("show", "must be a language ID")
	}

	lang, err := svc.GetLanguage(ctx, id)
	if err != nil {
		return fmt.Errorf("get language %s: %w", id, err)
	}

	res := &lexicon.Result{Language: *lang}
	page := lexicon.ListLexemesInput{LanguageID: id, ListInput: lexicon.ListInput{Limit: lexicon.MaxLimit}}
	for {
		lexemes, err := svc.ListLexemes(ctx, page)
		if err != nil {
			return fmt.Errorf("list lexemes of %s: %w", id, err)
		}
		res.Lexemes = append(res.Lexemes, lexemes...)
		if len(lexemes) < page.Limit {
			break
		}
		page.Offset += len(lexemes)
	}

	if err := printLanguage(w, res); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
