package phonology

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	maxSyllables = 5
	// promoteMonosyllable is the chance a one-syllable draw becomes two.
	promoteMonosyllable = 0.66
)

// syllableLambda scales base down for larger inventories, which carry more
// entropy per syllable.
func syllableLambda(base float64, ph phonologySizes) float64 {
	n := ph.vowels + ph.medials
	if n == 0 {
		return base
	}
	return base / math.Sqrt(float64(n))
}

type phonologySizes struct {
	vowels, medials int
}

func (l *Language) syllableCount(r *rand.Rand) int {
	n := min(poisson(r, l.lambda)+1, maxSyllables)
	if n == 1 && r.Float64() < promoteMonosyllable {
		n = 2
	}
	return n
}

// assemble draws one unrepaired word as a token sequence. The consonant
// probability is drawn once and shared by every syllable of the word.
// Codas only ever close the last syllable.
func (l *Language) assemble(r *rand.Rand) ([]string, error) {
	n := l.syllableCount(r)
	consonant := uniform(r, l.opts.NoConsLow, l.opts.NoConsHigh)

	ph := l.Phonology
	toks := make([]string, 0, 3*n)
	for i := range n {
		onset := ph.Medials
		if i == 0 {
			onset = ph.Initials
		}
		if !onset.Empty() && r.Float64() < consonant {
			c, err := Draw(r, onset)
			if err != nil {
				return nil, fmt.Errorf("draw onset: %w", err)
			}
			toks = append(toks, c)
		}

		v, err := Draw(r, ph.Vowels)
		if err != nil {
			return nil, fmt.Errorf("draw vowel: %w", err)
		}
		toks = append(toks, v)

		if i == n-1 && !ph.Finals.Empty() && r.Float64() < consonant {
			c, err := Draw(r, ph.Finals)
			if err != nil {
				return nil, fmt.Errorf("draw coda: %w", err)
			}
			toks = append(toks, c)
		}
	}
	return toks, nil
}
