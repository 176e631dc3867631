package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/phonogen/internal/config"
	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/phonology"
	"github.com/heartmarshall/phonogen/internal/reftable"
)

func testConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{Level: "info", Format: "text"},
		Generator: config.GeneratorConfig{
			NoConsLow:          phonology.DefaultNoConsLow,
			NoConsHigh:         phonology.DefaultNoConsHigh,
			BaseSyllableLambda: phonology.DefaultBaseSyllableLambda,
			RemoveLength:       phonology.DefaultRemoveLength,
			Perturbation:       phonology.DefaultPerturbation,
			Vocabulary:         5,
		},
	}
}

func runToString(t *testing.T, cfg *config.Config, flags Flags) string {
	t.Helper()
	var out bytes.Buffer
	if err := run(context.Background(), slog.New(slog.DiscardHandler), cfg, flags, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRun_SingleLanguageMatchesGenerateWords(t *testing.T) {
	cfg := testConfig()
	out := runToString(t, cfg, Flags{Seed: "42", Languages: 1})

	tables, err := reftable.Default()
	if err != nil {
		t.Fatal(err)
	}
	words, err := phonology.GenerateWords(tables, 5, GeneratorOptions(cfg.Generator), phonology.StringSeed("42"))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Language: ") {
		t.Errorf("first line: got %q", lines[0])
	}
	for i, w := range words {
		want := "  " + string(rune('1'+i)) + " " + w
		if lines[i+1] != want {
			t.Errorf("line %d: got %q, want %q", i+1, lines[i+1], want)
		}
	}
}

func TestRun_MultipleLanguagesDeterministicAndOrdered(t *testing.T) {
	cfg := testConfig()
	flags := Flags{Seed: "abc", Languages: 4}

	first := runToString(t, cfg, flags)
	second := runToString(t, cfg, flags)

	if first != second {
		t.Errorf("same seed should print the same output:\n%s\nvs\n%s", first, second)
	}
	if n := strings.Count(first, "Language: "); n != 4 {
		t.Errorf("got %d languages, want 4", n)
	}
}

func TestRun_ZeroLanguages(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), slog.New(slog.DiscardHandler), testConfig(), Flags{Languages: 0}, &out)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestRun_BadTablesDir(t *testing.T) {
	cfg := testConfig()
	cfg.Tables.Dir = t.TempDir()

	var out bytes.Buffer
	err := run(context.Background(), slog.New(slog.DiscardHandler), cfg, Flags{Languages: 1}, &out)
	if err == nil {
		t.Fatal("expected error for a directory without tables")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on error, got %q", out.String())
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := testConfig()
	err := applyFlags(cfg, Flags{Count: 3, Compact: true, Debug: true})
	if err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Generator.Vocabulary != 3 || !cfg.Generator.Compact || cfg.Log.Level != "debug" {
		t.Errorf("flags not applied: %+v %+v", cfg.Generator, cfg.Log)
	}

	cfg = testConfig()
	if err := applyFlags(cfg, Flags{Count: -1}); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Generator.Vocabulary != 5 {
		t.Errorf("negative count should keep config vocabulary, got %d", cfg.Generator.Vocabulary)
	}

	// Persisting needs a DSN.
	cfg = testConfig()
	if err := applyFlags(cfg, Flags{Count: -1, Persist: true}); err == nil {
		t.Error("persist without a DSN should fail validation")
	}
}

func TestLanguageSeed(t *testing.T) {
	seed := phonology.StringSeed("s")

	if got := languageSeed(seed, 0, 1); got != seed {
		t.Errorf("single language: got %q, want %q", got, seed)
	}
	if got := languageSeed(seed, 2, 3).String(); got != "s/2" {
		t.Errorf("derived: got %q, want s/2", got)
	}
	if !languageSeed(phonology.Seed{}, 1, 3).IsZero() {
		t.Error("an unseeded run should stay unseeded")
	}
}
