package phonology

import (
	"slices"
	"strings"
)

const (
	// Boundary pads a word while the repair rules run.
	Boundary = "#"
	// LengthMark follows a lengthened segment.
	LengthMark = "ː"

	// maxRepairPasses bounds how often the whole cascade is rerun while it
	// still changes the word.
	maxRepairPasses = 16
)

var (
	vowels    = set("i", "y", "ɨ", "ʉ", "ɯ", "u", "ɪ", "ʏ", "ʊ", "e", "o", "ɛ", "ɜ", "ʌ", "ɔ", "æ", "ɐ", "a", "ɑ", "ɒ")
	highFront = set("i", "y", "ɨ", "ʏ")
	highBack  = set("ɯ", "u", "ʊ")
	stops     = set("p", "t", "k")
)

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, s := range items {
		m[s] = struct{}{}
	}
	return m
}

func in(m map[string]struct{}, tok string) bool {
	_, ok := m[tok]
	return ok
}

func isSegment(tok string) bool { return tok != Boundary }

func isLong(tok string) bool {
	return len(tok) > len(LengthMark) && strings.HasSuffix(tok, LengthMark)
}

func shortOf(tok string) string { return strings.TrimSuffix(tok, LengthMark) }

func lengthen(tok string) string { return tok + LengthMark }

// rule rewrites a window of width tokens. match sees exactly width tokens;
// rewrite returns their replacement.
type rule struct {
	name    string
	width   int
	match   func(w []string) bool
	rewrite func(w []string) []string
}

// plainRepeat matches n identical short segments.
func plainRepeat(n int) func(w []string) bool {
	return func(w []string) bool {
		if !isSegment(w[0]) || isLong(w[0]) {
			return false
		}
		for _, t := range w[1:n] {
			if t != w[0] {
				return false
			}
		}
		return true
	}
}

func toLong(w []string) []string { return []string{lengthen(shortOf(w[0]))} }

func keepFirst(w []string) []string { return []string{w[0]} }

func keepSecond(w []string) []string { return []string{w[1]} }

// sequence matches tokens equal to want, position by position.
func sequence(want ...string) func(w []string) bool {
	return func(w []string) bool { return slices.Equal(w, want) }
}

func replaceWith(out ...string) func([]string) []string {
	return func([]string) []string { return slices.Clone(out) }
}

// cascade is applied in order; later rules rely on the output of earlier ones.
var cascade = []rule{
	{name: "triple repeat", width: 3, match: plainRepeat(3), rewrite: toLong},
	{name: "double repeat", width: 2, match: plainRepeat(2), rewrite: toLong},
	{
		name: "long plain repeat", width: 2,
		match:   func(w []string) bool { return isLong(w[0]) && shortOf(w[0]) == w[1] },
		rewrite: keepFirst,
	},

	{
		name: "vowel high-front", width: 2,
		match:   func(w []string) bool { return in(vowels, w[0]) && in(highFront, w[1]) },
		rewrite: func(w []string) []string { return []string{w[0], "j"} },
	},
	{
		name: "vowel high-back", width: 2,
		match:   func(w []string) bool { return in(vowels, w[0]) && in(highBack, w[1]) },
		rewrite: func(w []string) []string { return []string{w[0], "w"} },
	},
	{
		name: "high-front vowel", width: 2,
		match:   func(w []string) bool { return in(highFront, w[0]) && in(vowels, w[1]) },
		rewrite: func(w []string) []string { return []string{"j", w[1]} },
	},
	{
		name: "high-back vowel", width: 2,
		match:   func(w []string) bool { return in(highBack, w[0]) && in(vowels, w[1]) },
		rewrite: func(w []string) []string { return []string{"w", w[1]} },
	},

	{
		name: "long glide", width: 1,
		match:   func(w []string) bool { return w[0] == lengthen("j") || w[0] == lengthen("w") },
		rewrite: func(w []string) []string { return []string{shortOf(w[0])} },
	},

	{
		name: "high-front j", width: 2,
		match:   func(w []string) bool { return in(highFront, w[0]) && w[1] == "j" },
		rewrite: keepFirst,
	},
	{
		name: "high-back w", width: 2,
		match:   func(w []string) bool { return in(highBack, w[0]) && w[1] == "w" },
		rewrite: keepFirst,
	},
	{
		name: "j high-front", width: 2,
		match:   func(w []string) bool { return w[0] == "j" && in(highFront, w[1]) },
		rewrite: keepSecond,
	},
	{
		name: "w high-back", width: 2,
		match:   func(w []string) bool { return w[0] == "w" && in(highBack, w[1]) },
		rewrite: keepSecond,
	},

	{
		name: "aspiration", width: 2,
		match:   func(w []string) bool { return in(stops, w[0]) && w[1] == "h" },
		rewrite: func(w []string) []string { return []string{w[0] + "ʰ"} },
	},

	{
		name: "intervocalic j", width: 3,
		match:   func(w []string) bool { return in(vowels, w[0]) && w[1] == "j" && in(vowels, w[2]) },
		rewrite: func(w []string) []string { return []string{w[0], "ʒ", w[2]} },
	},

	{name: "double j", width: 2, match: sequence("j", "j"), rewrite: replaceWith("j")},
	{name: "double w", width: 2, match: sequence("w", "w"), rewrite: replaceWith("w")},

	{
		name: "long long", width: 2,
		match:   func(w []string) bool { return isLong(w[0]) && w[0] == w[1] },
		rewrite: keepFirst,
	},
	{
		name: "plain long", width: 2,
		match:   func(w []string) bool { return isSegment(w[0]) && !isLong(w[0]) && isLong(w[1]) && shortOf(w[1]) == w[0] },
		rewrite: keepSecond,
	},
	{
		name: "long plain", width: 2,
		match:   func(w []string) bool { return isLong(w[0]) && shortOf(w[0]) == w[1] },
		rewrite: keepFirst,
	},
	{name: "plain plain", width: 2, match: plainRepeat(2), rewrite: toLong},

	{name: "initial w j", width: 3, match: sequence(Boundary, "w", "j"), rewrite: replaceWith(Boundary, "u", "j")},
	{name: "initial j w", width: 3, match: sequence(Boundary, "j", "w"), rewrite: replaceWith(Boundary, "i", "w")},
	{name: "final w j", width: 3, match: sequence("w", "j", Boundary), rewrite: replaceWith("w", "i", Boundary)},
	{name: "final j w", width: 3, match: sequence("j", "w", Boundary), rewrite: replaceWith("j", "u", Boundary)},
}

// apply rewrites every match of r in toks, rescanning the tokens a rewrite
// may have joined with its left neighbours.
func (r rule) apply(toks []string) ([]string, bool) {
	changed := false
	for i := 0; i+r.width <= len(toks); {
		window := toks[i : i+r.width]
		if !r.match(window) {
			i++
			continue
		}
		repl := r.rewrite(window)
		if slices.Equal(repl, window) {
			i++
			continue
		}
		toks = slices.Replace(toks, i, i+r.width, repl...)
		changed = true
		i = max(0, i-r.width+1)
	}
	return toks, changed
}

// Repair runs the rewrite cascade over a tokenized word until it no longer
// changes, and returns the repaired tokens without boundaries. The input is
// not modified.
func Repair(tokens []string) []string {
	toks := make([]string, 0, len(tokens)+2)
	toks = append(toks, Boundary)
	toks = append(toks, tokens...)
	toks = append(toks, Boundary)

	for range maxRepairPasses {
		changed := false
		for _, r := range cascade {
			var c bool
			toks, c = r.apply(toks)
			changed = changed || c
		}
		if !changed {
			break
		}
	}

	return slices.DeleteFunc(toks, func(t string) bool { return t == Boundary })
}

// RepairWord repairs a space-separated word.
func RepairWord(word string) string {
	return strings.Join(Repair(strings.Fields(word)), " ")
}

// StripLength removes every length mark from word.
func StripLength(word string) string {
	return strings.ReplaceAll(word, LengthMark, "")
}
