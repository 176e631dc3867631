package phonology

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// Language is a simulated language: an inventory and the perturbed
// phonology built from it, fixed once and reused for any number of words.
// A Language is immutable; the caller supplies the random stream.
type Language struct {
	Pattern   string
	Inventory domain.Inventory
	Phonology domain.Phonology

	opts   Options
	lambda float64
	log    *slog.Logger
}

// VocabularyEntry pairs a concept with the word a language uses for it.
type VocabularyEntry struct {
	Concept string
	Word    string
}

// NewLanguage builds the phonology of inv from the base frequencies freq.
// The perturbation exponents are drawn from r.
func NewLanguage(r *rand.Rand, inv domain.Inventory, freq map[string]float64, opts Options) (*Language, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ph, err := BuildPhonology(r, inv, freq, opts.Perturbation)
	if err != nil {
		return nil, fmt.Errorf("build phonology: %w", err)
	}

	return &Language{
		Pattern:   inv.Pattern,
		Inventory: inv,
		Phonology: ph,
		opts:      opts,
		lambda:    syllableLambda(opts.BaseSyllableLambda, phonologySizes{vowels: ph.Vowels.Len(), medials: ph.Medials.Len()}),
		log:       slog.New(slog.DiscardHandler),
	}, nil
}

// Options returns the parameters the language was built with.
func (l *Language) Options() Options { return l.opts }

// Words generates a batch of count repaired words. Length marks are kept or
// stripped for the batch as a whole. count == 0 consumes no randomness.
func (l *Language) Words(r *rand.Rand, count int) ([]string, error) {
	if count < 0 {
		return nil, domain.NewValidationError("count", "must be non-negative")
	}
	if count == 0 {
		return []string{}, nil
	}

	repaired := make([][]string, count)
	for i := range repaired {
		toks, err := l.assemble(r)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		repaired[i] = Repair(toks)
	}

	strip := r.Float64() < l.opts.RemoveLength
	l.log.Debug("words generated", slog.Int("count", count), slog.Bool("strip_length", strip))

	sep := " "
	if l.opts.Compact {
		sep = ""
	}
	words := make([]string, count)
	for i, toks := range repaired {
		w := strings.Join(toks, sep)
		if strip {
			w = StripLength(w)
		}
		words[i] = w
	}
	return words, nil
}

// SingleWord generates one word.
func (l *Language) SingleWord(r *rand.Rand) (string, error) {
	words, err := l.Words(r, 1)
	if err != nil {
		return "", err
	}
	return words[0], nil
}

// Vocabulary assigns a word to each of n concepts named concept-1..concept-n.
// The words form one batch.
func (l *Language) Vocabulary(r *rand.Rand, n int) ([]VocabularyEntry, error) {
	words, err := l.Words(r, n)
	if err != nil {
		return nil, err
	}
	entries := make([]VocabularyEntry, len(words))
	for i, w := range words {
		entries[i] = VocabularyEntry{Concept: ConceptName(i), Word: w}
	}
	return entries, nil
}

// ConceptName returns the name of the i-th (zero-based) vocabulary concept.
func ConceptName(i int) string {
	return fmt.Sprintf("concept-%d", i+1)
}

// Name derives a display name for the language from one generated word,
// written without spaces or length marks and title-cased.
func (l *Language) Name(r *rand.Rand) (string, error) {
	w, err := l.SingleWord(r)
	if err != nil {
		return "", fmt.Errorf("language name: %w", err)
	}
	return DisplayName(w), nil
}

// DisplayName turns a generated word into a proper name.
func DisplayName(word string) string {
	w := StripLength(strings.Join(strings.Fields(word), ""))
	// Casers keep state and cannot be shared between goroutines.
	return cases.Title(xlanguage.Und).String(w)
}
