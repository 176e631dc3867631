package phonology

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phonogen/internal/domain"
)

func alwaysConsonants() Options {
	opts := DefaultOptions()
	opts.NoConsLow, opts.NoConsHigh = 1, 1
	return opts
}

func TestLanguage_CodaOnlyOnLastSyllable(t *testing.T) {
	t.Parallel()

	r := NewRand(StringSeed("coda"))
	lang, err := NewLanguage(r, codaInventory("n", "m"), testTables().Frequencies, alwaysConsonants())
	require.NoError(t, err)

	for range 500 {
		toks, err := lang.assemble(r)
		require.NoError(t, err)

		last := len(toks) - 1
		require.Contains(t, lang.Inventory.Finals, toks[last], "consonant probability 1 always closes the word")
		for _, tok := range toks[:last] {
			assert.NotContains(t, lang.Inventory.Finals, tok, "coda inside %q", toks)
		}
		assert.Equal(t, "p", toks[0], "first onset comes from initials")
	}
}

func TestLanguage_EmptyFinalsNeverEmitCoda(t *testing.T) {
	t.Parallel()

	r := NewRand(StringSeed("no coda"))
	lang, err := NewLanguage(r, codaInventory(), testTables().Frequencies, alwaysConsonants())
	require.NoError(t, err)

	for range 500 {
		toks, err := lang.assemble(r)
		require.NoError(t, err)
		assert.Contains(t, lang.Inventory.Vowels, toks[len(toks)-1])
	}
}

func TestLanguage_SyllableStructure(t *testing.T) {
	t.Parallel()

	r := NewRand(StringSeed("syllables"))
	lang, err := NewLanguage(r, codaInventory("n"), testTables().Frequencies, alwaysConsonants())
	require.NoError(t, err)

	for range 500 {
		toks, err := lang.assemble(r)
		require.NoError(t, err)

		var syllables int
		for _, tok := range toks {
			if _, ok := lang.Phonology.Vowels.Prob(tok); ok {
				syllables++
			}
		}
		assert.GreaterOrEqual(t, syllables, 1)
		assert.LessOrEqual(t, syllables, maxSyllables)
		// onset + vowel per syllable, plus one coda
		assert.Equal(t, 2*syllables+1, len(toks))
	}
}

func TestLanguage_ReuseIsDeterministic(t *testing.T) {
	t.Parallel()

	lang, err := NewLanguage(NewRand(IntSeed(3)), codaInventory("n"), testTables().Frequencies, DefaultOptions())
	require.NoError(t, err)

	a, err := lang.Words(NewRand(StringSeed("batch")), 25)
	require.NoError(t, err)
	b, err := lang.Words(NewRand(StringSeed("batch")), 25)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = lang.Words(NewRand(IntSeed(1)), -3)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLanguage_Vocabulary(t *testing.T) {
	t.Parallel()

	lang, err := NewLanguage(NewRand(IntSeed(9)), codaInventory("n"), testTables().Frequencies, DefaultOptions())
	require.NoError(t, err)

	entries, err := lang.Vocabulary(NewRand(IntSeed(9)), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, ConceptName(i), e.Concept)
		assert.NotEmpty(t, e.Word)
	}
	assert.Equal(t, "concept-1", entries[0].Concept)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"m e n e a w", "Meneaw"},
		{"k aː t o", "Kato"},
		{"ŋ i a g ɔ", "Ŋiagɔ"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.word), tt.word)
	}
}

func TestLanguage_Name(t *testing.T) {
	t.Parallel()

	lang, err := NewLanguage(NewRand(IntSeed(5)), codaInventory("n"), testTables().Frequencies, DefaultOptions())
	require.NoError(t, err)

	a, err := lang.Name(NewRand(StringSeed("name")))
	require.NoError(t, err)
	b, err := lang.Name(NewRand(StringSeed("name")))
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
	assert.NotContains(t, a, " ")
}

func TestSyllableCount_PromotesMonosyllables(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.BaseSyllableLambda = 0 // every Poisson draw is 0, so every raw count is 1

	r := NewRand(StringSeed("promote"))
	lang, err := NewLanguage(r, codaInventory("n"), testTables().Frequencies, opts)
	require.NoError(t, err)

	const draws = 20000
	var two int
	for range draws {
		n := lang.syllableCount(r)
		require.Contains(t, []int{1, 2}, n)
		if n == 2 {
			two++
		}
	}
	assert.InDelta(t, promoteMonosyllable, float64(two)/draws, 0.02)
}

func TestSyllableCount_Capped(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.BaseSyllableLambda = 500

	r := NewRand(StringSeed("cap"))
	lang, err := NewLanguage(r, codaInventory("n"), testTables().Frequencies, opts)
	require.NoError(t, err)

	for range 1000 {
		assert.Equal(t, maxSyllables, lang.syllableCount(r))
	}
}

func TestLanguage_WordsLogsOncePerBatch(t *testing.T) {
	t.Parallel()

	r := NewRand(StringSeed("log"))
	lang, err := NewLanguage(r, codaInventory("n"), testTables().Frequencies, DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	lang.log = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err = lang.Words(r, 25)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "one record per batch, none per word")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 25, rec["count"])
	assert.Contains(t, rec, "strip_length")
}
