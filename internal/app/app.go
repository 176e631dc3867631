package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phonogen/internal/adapter/postgres"
	lexiconrepo "github.com/heartmarshall/phonogen/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/phonogen/internal/config"
	"github.com/heartmarshall/phonogen/internal/domain"
	"github.com/heartmarshall/phonogen/internal/phonology"
	"github.com/heartmarshall/phonogen/internal/service/lexicon"
	"github.com/heartmarshall/phonogen/pkg/ctxutil"
)

// Flags are the command-line overrides applied on top of the loaded config.
type Flags struct {
	// Count is the number of words per language. Negative keeps
	// generator.vocabulary from the config.
	Count     int
	Seed      string
	Languages int
	Compact   bool
	Persist   bool
	Migrate   bool
	Debug     bool

	// List prints the stored languages instead of generating.
	List bool
	// Show prints one stored language, by ID, instead of generating.
	Show string
}

func (f Flags) reading() bool { return f.List || f.Show != "" }

// Run is the application entry point. It loads configuration, applies the
// flags, generates the requested languages and prints them to stdout.
func Run(ctx context.Context, flags Flags, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := applyFlags(cfg, flags); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting phonogen",
		slog.String("version", BuildVersion()),
		slog.Int("languages", flags.Languages),
		slog.Int("count", cfg.Generator.Vocabulary),
	)

	return run(ctx, logger, cfg, flags, stdout)
}

func applyFlags(cfg *config.Config, flags Flags) error {
	if flags.Debug {
		cfg.Log.Level = "debug"
	}
	if flags.Compact {
		cfg.Generator.Compact = true
	}
	if flags.Count >= 0 {
		cfg.Generator.Vocabulary = flags.Count
	}
	if flags.Persist || flags.Migrate || flags.reading() {
		cfg.Database.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, flags Flags, stdout io.Writer) error {
	if flags.Languages < 1 {
		return domain.NewValidationError("languages", "must be at least 1")
	}
	if flags.List && flags.Show != "" {
		return domain.NewValidationError("show", "cannot be combined with list")
	}

	tables, err := LoadTables(cfg.Tables)
	if err != nil {
		return err
	}

	svc := lexicon.NewService(logger, nil, nil, tables)
	generate := svc.Generate

	if cfg.Database.Enabled {
		if flags.Migrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		svc = lexicon.NewService(logger, lexiconrepo.New(pool), postgres.NewTxManager(pool), tables)
		generate = svc.CreateLanguage
	}

	switch {
	case flags.List:
		return listLanguages(ctx, svc, stdout)
	case flags.Show != "":
		return showLanguage(ctx, svc, flags.Show, stdout)
	}

	seed := phonology.ParseSeed(flags.Seed)
	opts := GeneratorOptions(cfg.Generator)
	results := make([]*lexicon.Result, flags.Languages)

	ctx = ctxutil.WithRunID(ctx, uuid.New())
	g, gctx := errgroup.WithContext(ctx)
	for i := range flags.Languages {
		g.Go(func() error {
			res, err := generate(ctxutil.WithLanguageIndex(gctx, i), lexicon.GenerateInput{
				Seed:    languageSeed(seed, i, flags.Languages),
				Options: opts,
				Words:   cfg.Generator.Vocabulary,
			})
			if err != nil {
				return fmt.Errorf("language %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := printLanguage(stdout, res); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// languageSeed gives each of n languages its own stream. A single language
// uses seed as is so its words match phonology.GenerateWords.
func languageSeed(seed phonology.Seed, i, n int) phonology.Seed {
	if n == 1 {
		return seed
	}
	return seed.Derive(strconv.Itoa(i))
}

func printLanguage(w io.Writer, res *lexicon.Result) error {
	if _, err := fmt.Fprintf(w, "Language: %s\n", res.Language.Name); err != nil {
		return err
	}
	for i, word := range res.Words() {
		if _, err := fmt.Fprintf(w, "  %d %s\n", i+1, word); err != nil {
			return err
		}
	}
	return nil
}
