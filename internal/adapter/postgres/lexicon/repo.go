// Package lexicon persists generated languages and their lexemes in PostgreSQL.
package lexicon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/adapter/postgres"
	"github.com/heartmarshall/phonogen/internal/domain"
)

// insertChunkSize bounds the rows per INSERT so the statement stays well
// under PostgreSQL's 65535 bind parameter limit.
const insertChunkSize = 500

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var languageColumns = []string{
	"id", "name", "seed", "pattern", "vowels", "initials", "medials", "finals",
	"no_cons_low", "no_cons_high", "created_at",
}

var lexemeColumns = []string{"id", "language_id", "concept", "form", "position", "created_at"}

type languageRow struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Seed       string    `db:"seed"`
	Pattern    string    `db:"pattern"`
	Vowels     []string  `db:"vowels"`
	Initials   []string  `db:"initials"`
	Medials    []string  `db:"medials"`
	Finals     []string  `db:"finals"`
	NoConsLow  float64   `db:"no_cons_low"`
	NoConsHigh float64   `db:"no_cons_high"`
	CreatedAt  time.Time `db:"created_at"`
}

type lexemeRow struct {
	ID         uuid.UUID `db:"id"`
	LanguageID uuid.UUID `db:"language_id"`
	Concept    string    `db:"concept"`
	Form       string    `db:"form"`
	Position   int       `db:"position"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repo provides language and lexeme persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a repository. Inside TxManager.RunInTx the transaction from
// the context is used instead of db.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateLanguage inserts lang and returns the stored row.
func (r *Repo) CreateLanguage(ctx context.Context, lang domain.Language) (*domain.Language, error) {
	query, args, err := psql.Insert("languages").
		Columns(languageColumns...).
		Values(
			lang.ID, lang.Name, lang.Seed, lang.Inventory.Pattern,
			nonNil(lang.Inventory.Vowels), nonNil(lang.Inventory.Initials),
			nonNil(lang.Inventory.Medials), nonNil(lang.Inventory.Finals),
			lang.NoConsLow, lang.NoConsHigh, lang.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(languageColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert language: %w", err)
	}

	var row languageRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "language", lang.ID)
	}

	out := toDomainLanguage(row)
	return &out, nil
}

// BulkInsertLexemes inserts lexemes and returns how many rows were written.
func (r *Repo) BulkInsertLexemes(ctx context.Context, lexemes []domain.Lexeme) (int, error) {
	var total int
	for start := 0; start < len(lexemes); start += insertChunkSize {
		chunk := lexemes[start:min(start+insertChunkSize, len(lexemes))]

		insert := psql.Insert("lexemes").Columns(lexemeColumns...)
		for _, l := range chunk {
			insert = insert.Values(l.ID, l.LanguageID, l.Concept, l.Form, l.Position, l.CreatedAt)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return total, fmt.Errorf("build insert lexemes: %w", err)
		}

		tag, err := r.q(ctx).Exec(ctx, query, args...)
		if err != nil {
			return total, postgres.MapError(err, "lexemes of language", chunk[0].LanguageID)
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}

// DeleteLanguagesBefore removes languages created before threshold. Their
// lexemes go with them through ON DELETE CASCADE.
func (r *Repo) DeleteLanguagesBefore(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := psql.Delete("languages").
		Where(squirrel.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete languages: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete languages before %s: %w", threshold.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetLanguage returns a language by ID.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	query, args, err := psql.Select(languageColumns...).
		From("languages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select language: %w", err)
	}

	var row languageRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("language %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "language", id)
	}

	out := toDomainLanguage(row)
	return &out, nil
}

// ListLanguages returns languages, newest first.
func (r *Repo) ListLanguages(ctx context.Context, limit, offset int) ([]domain.Language, error) {
	query, args, err := psql.Select(languageColumns...).
		From("languages").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list languages: %w", err)
	}

	var rows []languageRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	out := make([]domain.Language, len(rows))
	for i, row := range rows {
		out[i] = toDomainLanguage(row)
	}
	return out, nil
}

// ListLexemes returns the lexemes of a language in generation order.
// An unknown language yields an empty slice.
func (r *Repo) ListLexemes(ctx context.Context, languageID uuid.UUID, limit, offset int) ([]domain.Lexeme, error) {
	query, args, err := psql.Select(lexemeColumns...).
		From("lexemes").
		Where(squirrel.Eq{"language_id": languageID}).
		OrderBy("position").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lexemes: %w", err)
	}

	var rows []lexemeRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lexemes: %w", err)
	}

	out := make([]domain.Lexeme, len(rows))
	for i, row := range rows {
		out[i] = domain.Lexeme(row)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainLanguage(row languageRow) domain.Language {
	return domain.Language{
		ID:   row.ID,
		Name: row.Name,
		Seed: row.Seed,
		Inventory: domain.Inventory{
			Pattern:  row.Pattern,
			Vowels:   row.Vowels,
			Initials: row.Initials,
			Medials:  row.Medials,
			Finals:   row.Finals,
		},
		NoConsLow:  row.NoConsLow,
		NoConsHigh: row.NoConsHigh,
		CreatedAt:  row.CreatedAt,
	}
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
