package phonology

import (
	"math"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// Default generation parameters.
const (
	DefaultNoConsLow          = 0.33
	DefaultNoConsHigh         = 0.66
	DefaultBaseSyllableLambda = 10
	DefaultRemoveLength       = 0.33
	DefaultPerturbation       = 1.5
)

// Options tunes word generation. Start from DefaultOptions and override
// fields; the zero value is not a usable configuration.
type Options struct {
	// NoConsLow and NoConsHigh bound the per-word probability of emitting
	// an onset or coda consonant.
	NoConsLow  float64
	NoConsHigh float64

	// BaseSyllableLambda is scaled by the inventory size to give the
	// Poisson mean of the syllable count.
	BaseSyllableLambda float64

	// RemoveLength is the probability that a whole batch loses its length marks.
	RemoveLength float64

	// Perturbation is the width of the exponent range applied to base
	// frequencies. Above 2 the range includes negative exponents, which
	// favour rare phonemes; phonemes with frequency 0 are never drawn.
	Perturbation float64

	// Compact joins phonemes without spaces.
	Compact bool
}

// DefaultOptions returns the standard generation parameters.
func DefaultOptions() Options {
	return Options{
		NoConsLow:          DefaultNoConsLow,
		NoConsHigh:         DefaultNoConsHigh,
		BaseSyllableLambda: DefaultBaseSyllableLambda,
		RemoveLength:       DefaultRemoveLength,
		Perturbation:       DefaultPerturbation,
	}
}

// Validate checks all fields and collects all errors.
func (o Options) Validate() error {
	var errs []domain.FieldError

	if !isProbability(o.NoConsLow) {
		errs = append(errs, domain.FieldError{Field: "no_cons_low", Message: "must be in [0, 1]"})
	}
	if !isProbability(o.NoConsHigh) {
		errs = append(errs, domain.FieldError{Field: "no_cons_high", Message: "must be in [0, 1]"})
	}
	if o.NoConsLow > o.NoConsHigh {
		errs = append(errs, domain.FieldError{Field: "no_cons_low", Message: "must not exceed no_cons_high"})
	}
	if o.BaseSyllableLambda < 0 || math.IsNaN(o.BaseSyllableLambda) || math.IsInf(o.BaseSyllableLambda, 0) {
		errs = append(errs, domain.FieldError{Field: "base_syllable_lambda", Message: "must be a non-negative number"})
	}
	if !isProbability(o.RemoveLength) {
		errs = append(errs, domain.FieldError{Field: "remove_length", Message: "must be in [0, 1]"})
	}
	if o.Perturbation < 0 || math.IsNaN(o.Perturbation) || math.IsInf(o.Perturbation, 0) {
		errs = append(errs, domain.FieldError{Field: "perturbation", Message: "must be a non-negative number"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
