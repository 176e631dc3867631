package reftable

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/phonogen/internal/domain"
)

// record is a parsed table row keyed by upper-cased column name.
type record struct {
	line   int
	fields map[string]string
}

func (r record) get(col string) string { return r.fields[col] }

// LoadDir reads the four tables from a directory on disk.
func LoadDir(dir string) (*Tables, error) {
	return Load(os.DirFS(dir))
}

// Load reads the four tables from fsys.
func Load(fsys fs.FS) (*Tables, error) {
	var t Tables
	var err error

	if t.VowelInventories, err = parseVowelInventories(fsys); err != nil {
		return nil, err
	}
	if t.SyllablePatterns, err = parseSyllablePatterns(fsys); err != nil {
		return nil, err
	}
	if t.ConsonantInventories, err = parseConsonantInventories(fsys); err != nil {
		return nil, err
	}
	if t.Frequencies, err = parseFrequencies(fsys); err != nil {
		return nil, err
	}

	return &t, nil
}

func parseVowelInventories(fsys fs.FS) ([]VowelInventory, error) {
	rows, err := readTable(fsys, VowelInventoriesFile, "VOWELS")
	if err != nil {
		return nil, err
	}

	out := make([]VowelInventory, 0, len(rows))
	for id, rec := range rows {
		w, err := weight(VowelInventoriesFile, rec, true)
		if err != nil {
			return nil, err
		}
		out = append(out, VowelInventory{ID: id, Vowels: domain.SplitSymbols(rec.get("VOWELS")), Weight: w})
	}
	slices.SortFunc(out, func(a, b VowelInventory) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func parseSyllablePatterns(fsys fs.FS) ([]SyllablePattern, error) {
	rows, err := readTable(fsys, SyllablePatternsFile, "PATTERN")
	if err != nil {
		return nil, err
	}

	out := make([]SyllablePattern, 0, len(rows))
	for id, rec := range rows {
		w, err := weight(SyllablePatternsFile, rec, true)
		if err != nil {
			return nil, err
		}
		out = append(out, SyllablePattern{ID: id, Pattern: strings.TrimSpace(rec.get("PATTERN")), Weight: w})
	}
	slices.SortFunc(out, func(a, b SyllablePattern) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func parseConsonantInventories(fsys fs.FS) ([]ConsonantInventory, error) {
	rows, err := readTable(fsys, ConsonantInventoriesFile, "PATTERN", "INITIAL", "MEDIAL", "FINAL")
	if err != nil {
		return nil, err
	}

	out := make([]ConsonantInventory, 0, len(rows))
	for id, rec := range rows {
		w, err := weight(ConsonantInventoriesFile, rec, false)
		if err != nil {
			return nil, err
		}
		out = append(out, ConsonantInventory{
			ID:       id,
			Pattern:  strings.TrimSpace(rec.get("PATTERN")),
			Initials: domain.SplitSymbols(rec.get("INITIAL")),
			Medials:  domain.SplitSymbols(rec.get("MEDIAL")),
			Finals:   domain.SplitSymbols(rec.get("FINAL")),
			Weight:   w,
		})
	}
	slices.SortFunc(out, func(a, b ConsonantInventory) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func parseFrequencies(fsys fs.FS) (map[string]float64, error) {
	rows, err := readTable(fsys, PhonemeFrequencyFile, "GRAPHEME")
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(rows))
	for _, rec := range rows {
		grapheme := domain.NormalizeSymbol(rec.get("GRAPHEME"))
		if grapheme == "" {
			return nil, malformed(PhonemeFrequencyFile, rec.line, "empty GRAPHEME")
		}
		if _, dup := out[grapheme]; dup {
			return nil, malformed(PhonemeFrequencyFile, rec.line, fmt.Sprintf("duplicate grapheme %q", grapheme))
		}
		w, err := weight(PhonemeFrequencyFile, rec, true)
		if err != nil {
			return nil, err
		}
		out[grapheme] = w
	}
	return out, nil
}

// readTable parses a tab-separated file with a header row and an ID column.
// Column names are matched case-insensitively. Rows with an empty ID are skipped.
func readTable(fsys fs.FS, name string, required ...string) (map[string]record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, malformed(name, 1, "missing header")
		}
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}
	for i := range header {
		header[i] = strings.ToUpper(strings.TrimSpace(header[i]))
	}

	for _, col := range append([]string{"ID"}, required...) {
		if !slices.Contains(header, col) {
			return nil, malformed(name, 1, fmt.Sprintf("missing column %s", col))
		}
	}

	rows := make(map[string]record)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		line, _ := reader.FieldPos(0)
		rec := record{line: line, fields: make(map[string]string, len(header))}
		for i, col := range header {
			if i < len(fields) {
				rec.fields[col] = fields[i]
			}
		}

		id := strings.TrimSpace(rec.get("ID"))
		if id == "" {
			continue
		}
		if _, dup := rows[id]; dup {
			return nil, malformed(name, line, fmt.Sprintf("duplicate ID %q", id))
		}
		rows[id] = rec
	}

	return rows, nil
}

// weight reads the FREQUENCY (or WEIGHT) column of rec. When the table has
// neither column and required is false, every row weighs 1.
func weight(name string, rec record, required bool) (float64, error) {
	raw, ok := rec.fields["FREQUENCY"]
	if !ok {
		raw, ok = rec.fields["WEIGHT"]
	}
	if !ok {
		if required {
			return 0, malformed(name, rec.line, "missing FREQUENCY or WEIGHT")
		}
		return 1, nil
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, malformed(name, rec.line, fmt.Sprintf("weight %q is not a number", raw))
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, malformed(name, rec.line, fmt.Sprintf("weight %v out of range", w))
	}
	return w, nil
}

func malformed(name string, line int, msg string) error {
	return fmt.Errorf("%s:%d: %s: %w", name, line, msg, domain.ErrMalformedTable)
}
