package phonology

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// ChooseIndex draws an index with probability proportional to weights.
// Weights need not sum to 1; they are normalized here, so callers may pass
// raw table frequencies. It fails with domain.ErrInvalidDistribution when
// weights is empty, contains a negative or non-finite value, or sums to zero.
func ChooseIndex(r *rand.Rand, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("empty population: %w", domain.ErrInvalidDistribution)
	}

	var total float64
	last := -1
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("weight %d is %v: %w", i, w, domain.ErrInvalidDistribution)
		}
		if w > 0 {
			last = i
		}
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("weights sum to zero: %w", domain.ErrInvalidDistribution)
	}

	u := r.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum && w > 0 {
			return i, nil
		}
	}
	// Rounding left u at or above the final cumulative sum.
	return last, nil
}

// Choose draws one element of population weighted by the parallel weights.
func Choose[T any](r *rand.Rand, population []T, weights []float64) (T, error) {
	var zero T
	if len(population) != len(weights) {
		return zero, fmt.Errorf("population has %d elements but %d weights: %w",
			len(population), len(weights), domain.ErrInvalidDistribution)
	}
	i, err := ChooseIndex(r, weights)
	if err != nil {
		return zero, err
	}
	return population[i], nil
}

// Draw samples one symbol from d.
func Draw(r *rand.Rand, d domain.Distribution) (string, error) {
	return Choose(r, d.Symbols, d.Probs)
}

// uniform returns a float64 in [low, high).
func uniform(r *rand.Rand, low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

// poisson draws from a Poisson distribution with mean lambda. Knuth's
// multiplication method is exact for the small means the engine uses; larger
// means fall back to a rounded normal approximation.
func poisson(r *rand.Rand, lambda float64) int {
	if lambda <= 0 || math.IsNaN(lambda) {
		return 0
	}
	if lambda >= 30 {
		n := math.Round(lambda + math.Sqrt(lambda)*r.NormFloat64())
		if n < 0 {
			return 0
		}
		return int(n)
	}

	limit := math.Exp(-lambda)
	k := 0
	p := r.Float64()
	for p > limit {
		k++
		p *= r.Float64()
	}
	return k
}
