package phonology

import (
	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/reftable"
)

// testTables returns a single-pattern table set with codas.
func testTables() *reftable.Tables {
	return &reftable.Tables{
		VowelInventories: []reftable.VowelInventory{
			{ID: "1", Vowels: []string{"a", "e", "i", "o", "u"}, Weight: 2},
			{ID: "2", Vowels: []string{"a", "i", "u"}, Weight: 1},
		},
		SyllablePatterns: []reftable.SyllablePattern{
			{ID: "1", Pattern: "CVC", Weight: 1},
		},
		ConsonantInventories: []reftable.ConsonantInventory{
			{
				ID:       "1",
				Pattern:  "CVC",
				Initials: []string{"p", "t", "k", "h", "j", "w"},
				Medials:  []string{"m", "n", "s", "j", "w", "h"},
				Finals:   []string{"n", "ŋ"},
				Weight:   1,
			},
		},
		Frequencies: map[string]float64{
			"a": 0.9, "e": 0.7, "i": 0.8, "o": 0.6, "u": 0.7,
			"p": 0.5, "t": 0.6, "k": 0.6, "h": 0.3, "j": 0.4, "w": 0.4,
			"m": 0.5, "n": 0.7, "s": 0.5, "ŋ": 0.2,
		},
	}
}

// codaInventory has disjoint symbols per role so a token's role is
// recoverable from the token alone.
func codaInventory(finals ...string) domain.Inventory {
	return domain.Inventory{
		Pattern:  "CVC",
		Vowels:   []string{"a", "e", "o"},
		Initials: []string{"p"},
		Medials:  []string{"t", "s"},
		Finals:   finals,
	}
}
