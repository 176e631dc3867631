package domain

import "slices"

// Role names the syllable position a phoneme may fill.
type Role string

const (
	RoleVowel   Role = "vowels"
	RoleInitial Role = "initials" // onset of the first syllable
	RoleMedial  Role = "medials"  // onset of later syllables
	RoleFinal   Role = "finals"   // coda of the last syllable
)

// Roles lists the roles in the order their distributions are drawn.
var Roles = []Role{RoleVowel, RoleInitial, RoleMedial, RoleFinal}

// Inventory is the set of phonemes available to a language, per role.
// Built once per language and not modified afterwards.
type Inventory struct {
	Pattern  string
	Vowels   []string
	Initials []string
	Medials  []string
	Finals   []string
}

// Symbols returns the phonemes bound to role.
func (inv Inventory) Symbols(role Role) []string {
	switch role {
	case RoleVowel:
		return inv.Vowels
	case RoleInitial:
		return inv.Initials
	case RoleMedial:
		return inv.Medials
	case RoleFinal:
		return inv.Finals
	default:
		return nil
	}
}

// Distribution is a probability mass function over a sorted set of symbols.
// Symbols and Probs are parallel; Probs sum to 1 unless the distribution is empty.
type Distribution struct {
	Symbols []string
	Probs   []float64
}

// Len returns the number of symbols.
func (d Distribution) Len() int { return len(d.Symbols) }

// Empty reports whether the role has no phonemes; such a role is never used.
func (d Distribution) Empty() bool { return len(d.Symbols) == 0 }

// Prob returns the probability of symbol.
func (d Distribution) Prob(symbol string) (float64, bool) {
	i, ok := slices.BinarySearch(d.Symbols, symbol)
	if !ok {
		return 0, false
	}
	return d.Probs[i], true
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var s float64
	for _, p := range d.Probs {
		s += p
	}
	return s
}

// Phonology holds the perturbed per-role distributions of a language.
type Phonology struct {
	Vowels   Distribution
	Initials Distribution
	Medials  Distribution
	Finals   Distribution
}

// Role returns the distribution bound to role.
func (p Phonology) Role(role Role) Distribution {
	switch role {
	case RoleVowel:
		return p.Vowels
	case RoleInitial:
		return p.Initials
	case RoleMedial:
		return p.Medials
	case RoleFinal:
		return p.Finals
	default:
		return Distribution{}
	}
}

// SetRole replaces the distribution bound to role.
func (p *Phonology) SetRole(role Role, d Distribution) {
	switch role {
	case RoleVowel:
		p.Vowels = d
	case RoleInitial:
		p.Initials = d
	case RoleMedial:
		p.Medials = d
	case RoleFinal:
		p.Finals = d
	}
}
