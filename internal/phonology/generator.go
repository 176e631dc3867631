// Package phonology generates words for simulated languages: it draws a
// phoneme inventory from the reference tables, perturbs base phoneme
// frequencies into a per-language phonology, assembles syllables and repairs
// the result with an ordered cascade of phonotactic rewrite rules.
package phonology

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/reftable"
)

// Generator owns a random stream and draws languages and words from it.
// It is not safe for concurrent use; create one per goroutine.
type Generator struct {
	tables *reftable.Tables
	src    *rand.PCG
	rng    *rand.Rand
	log    *slog.Logger
}

// NewGenerator creates a generator over tables positioned at the start of
// seed's stream.
func NewGenerator(log *slog.Logger, tables *reftable.Tables, seed Seed) *Generator {
	src := NewSource(seed)
	return &Generator{
		tables: tables,
		src:    src,
		rng:    rand.New(src),
		log:    log.With("component", "phonology"),
	}
}

// Reseed restarts the generator at the beginning of seed's stream.
func (g *Generator) Reseed(seed Seed) {
	hi, lo := seed.words()
	g.src.Seed(hi, lo)
}

// Rand exposes the generator's stream, e.g. to draw words from a Language.
func (g *Generator) Rand() *rand.Rand { return g.rng }

// NewLanguage draws a syllable pattern, a vowel inventory and a consonant
// inventory joined to the pattern, then builds the perturbed phonology.
func (g *Generator) NewLanguage(opts Options) (*Language, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	patterns, pw := g.tables.PatternPopulation()
	pattern, err := Choose(g.rng, patterns, pw)
	if err != nil {
		return nil, fmt.Errorf("choose syllable pattern: %w", err)
	}

	vowelSets, vw := g.tables.VowelPopulation()
	vowels, err := Choose(g.rng, vowelSets, vw)
	if err != nil {
		return nil, fmt.Errorf("choose vowel inventory: %w", err)
	}

	rows := g.tables.ConsonantInventoriesFor(pattern)
	if len(rows) == 0 {
		return nil, fmt.Errorf("pattern %q: %w", pattern, domain.ErrMissingInventoryForPattern)
	}
	cw := make([]float64, len(rows))
	for i, row := range rows {
		cw[i] = row.Weight
	}
	cons, err := Choose(g.rng, rows, cw)
	if err != nil {
		return nil, fmt.Errorf("choose consonant inventory: %w", err)
	}

	inv := domain.Inventory{
		Pattern:  pattern,
		Vowels:   vowels,
		Initials: cons.Initials,
		Medials:  cons.Medials,
		Finals:   cons.Finals,
	}
	lang, err := NewLanguage(g.rng, inv, g.tables.Frequencies, opts)
	if err != nil {
		return nil, err
	}
	lang.log = g.log

	g.log.Debug("language drawn",
		slog.String("pattern", pattern),
		slog.Int("vowels", lang.Phonology.Vowels.Len()),
		slog.Int("initials", lang.Phonology.Initials.Len()),
		slog.Int("medials", lang.Phonology.Medials.Len()),
		slog.Int("finals", lang.Phonology.Finals.Len()),
	)
	return lang, nil
}

// Words draws a fresh language and generates count words from it.
// count == 0 returns an empty slice without touching the stream.
func (g *Generator) Words(count int, opts Options) ([]string, error) {
	if count < 0 {
		return nil, domain.NewValidationError("count", "must be non-negative")
	}
	if count == 0 {
		return []string{}, nil
	}

	lang, err := g.NewLanguage(opts)
	if err != nil {
		return nil, err
	}
	return lang.Words(g.rng, count)
}

// GenerateWords is the one-shot form of Generator.Words: the same seed and
// options always produce the same words.
func GenerateWords(tables *reftable.Tables, count int, opts Options, seed Seed) ([]string, error) {
	return NewGenerator(slog.New(slog.DiscardHandler), tables, seed).Words(count, opts)
}
