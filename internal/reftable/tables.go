// Package reftable loads the reference tables the phonology engine samples
// from: vowel inventories, syllable patterns, consonant inventories keyed by
// pattern, and base phoneme frequencies.
// Tables are read once and treated as read-only afterwards.
package reftable

import (
	"embed"
	"io/fs"
	"sync"
)

// File names inside a table directory.
const (
	VowelInventoriesFile     = "vowel_inventories.tsv"
	SyllablePatternsFile     = "syllable_patterns.tsv"
	ConsonantInventoriesFile = "consonant_inventories.tsv"
	PhonemeFrequencyFile     = "phoneme_frequency.tsv"
)

//go:embed resources/*.tsv
var resources embed.FS

// VowelInventory is one row of the vowel inventory table.
type VowelInventory struct {
	ID     string
	Vowels []string
	Weight float64
}

// SyllablePattern is one row of the syllable pattern table.
type SyllablePattern struct {
	ID      string
	Pattern string
	Weight  float64
}

// ConsonantInventory is one row of the consonant inventory table.
// Rows without a weight column are drawn uniformly (Weight = 1).
type ConsonantInventory struct {
	ID       string
	Pattern  string
	Initials []string
	Medials  []string
	Finals   []string
	Weight   float64
}

// Tables holds the four reference tables. Row slices are ordered by ID.
type Tables struct {
	VowelInventories     []VowelInventory
	SyllablePatterns     []SyllablePattern
	ConsonantInventories []ConsonantInventory
	Frequencies          map[string]float64
}

// ConsonantInventoriesFor returns the consonant inventory rows joined to pattern.
func (t *Tables) ConsonantInventoriesFor(pattern string) []ConsonantInventory {
	var out []ConsonantInventory
	for _, row := range t.ConsonantInventories {
		if row.Pattern == pattern {
			out = append(out, row)
		}
	}
	return out
}

// VowelPopulation returns the vowel inventories and their weights as parallel slices.
func (t *Tables) VowelPopulation() ([][]string, []float64) {
	pop := make([][]string, len(t.VowelInventories))
	weights := make([]float64, len(t.VowelInventories))
	for i, row := range t.VowelInventories {
		pop[i] = row.Vowels
		weights[i] = row.Weight
	}
	return pop, weights
}

// PatternPopulation returns the syllable patterns and their weights as parallel slices.
func (t *Tables) PatternPopulation() ([]string, []float64) {
	pop := make([]string, len(t.SyllablePatterns))
	weights := make([]float64, len(t.SyllablePatterns))
	for i, row := range t.SyllablePatterns {
		pop[i] = row.Pattern
		weights[i] = row.Weight
	}
	return pop, weights
}

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	sub, err := fs.Sub(resources, "resources")
	if err != nil {
		return nil, err
	}
	return Load(sub)
})

// Default returns the tables embedded in the binary. The result is shared;
// callers must not modify it.
func Default() (*Tables, error) {
	return loadDefault()
}
