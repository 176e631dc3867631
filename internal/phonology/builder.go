package phonology

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// missingFrequencyDivisor scales the table mean to get the base frequency
// of a phoneme absent from the table.
const missingFrequencyDivisor = 1.5

// DefaultFrequency returns the base frequency used for phonemes missing from freq.
func DefaultFrequency(freq map[string]float64) float64 {
	if len(freq) == 0 {
		return 1 / missingFrequencyDivisor
	}
	var sum float64
	for _, f := range freq {
		sum += f
	}
	return sum / float64(len(freq)) / missingFrequencyDivisor
}

// BuildPhonology perturbs the base frequency of every phoneme in inv and
// normalizes each role into a probability distribution.
//
// For each symbol (roles in domain.Roles order, symbols sorted) one exponent
// e ~ U(1-p/2, 1+p/2) is drawn and the weight is freq**e, or 0 when freq is
// 0 whatever the sign of e. A role with no
// symbols yields an empty distribution. A non-empty role whose weights all
// come out zero fails with domain.ErrInvalidDistribution.
func BuildPhonology(r *rand.Rand, inv domain.Inventory, freq map[string]float64, perturbation float64) (domain.Phonology, error) {
	fallback := DefaultFrequency(freq)
	low, high := 1-perturbation/2, 1+perturbation/2

	var ph domain.Phonology
	for _, role := range domain.Roles {
		symbols := uniqueSorted(inv.Symbols(role))
		if len(symbols) == 0 {
			continue
		}

		probs := make([]float64, len(symbols))
		var total float64
		for i, s := range symbols {
			base, ok := freq[s]
			if !ok {
				base = fallback
			}
			// The exponent is drawn even for zero weights so the stream
			// does not depend on table contents. Zero stays zero: with
			// p > 2 the exponent can be negative and 0**e would be +Inf.
			e := uniform(r, low, high)
			if base > 0 {
				probs[i] = math.Pow(base, e)
			}
			total += probs[i]
		}
		if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
			return domain.Phonology{}, fmt.Errorf("%s: perturbed weights sum to %v: %w", role, total, domain.ErrInvalidDistribution)
		}
		for i := range probs {
			probs[i] /= total
		}

		ph.SetRole(role, domain.Distribution{Symbols: symbols, Probs: probs})
	}

	return ph, nil
}

func uniqueSorted(symbols []string) []string {
	if len(symbols) == 0 {
		return nil
	}
	out := slices.Clone(symbols)
	slices.Sort(out)
	return slices.Compact(out)
}
