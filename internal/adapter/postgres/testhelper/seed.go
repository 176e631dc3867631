package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLanguage inserts a small CVC language and returns it.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool) domain.Language {
	t.Helper()

	lang := domain.Language{
		ID:   uuid.New(),
		Name: "Test" + uniqueSuffix(),
		Seed: "seed-" + uniqueSuffix(),
		Inventory: domain.Inventory{
			Pattern:  "CVC",
			Vowels:   []string{"a", "i", "u"},
			Initials: []string{"p", "t", "k"},
			Medials:  []string{"m", "n"},
			Finals:   []string{"n"},
		},
		NoConsLow:  0.33,
		NoConsHigh: 0.66,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO languages (id, name, seed, pattern, vowels, initials, medials, finals, no_cons_low, no_cons_high, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		lang.ID, lang.Name, lang.Seed, lang.Inventory.Pattern,
		lang.Inventory.Vowels, lang.Inventory.Initials, lang.Inventory.Medials, lang.Inventory.Finals,
		lang.NoConsLow, lang.NoConsHigh, lang.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage: %v", err)
	}

	return lang
}
