// Command phonogen generates the vocabulary of one or more simulated
// languages and prints it to stdout.
//
// Flags:
//
//	-count      words per language (default 10, or generator.vocabulary)
//	-seed       text seed; empty draws from runtime entropy
//	-languages  number of languages, generated concurrently
//	-compact    join segments without spaces
//	-persist    store the languages in PostgreSQL
//	-migrate    apply database migrations first (implies the database)
//	-list       print the stored languages instead of generating
//	-show       print one stored language by ID instead of generating
//	-version    print the version and exit
//	-debug      log at debug level
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/phonogen/internal/app"
)

func main() {
	count := flag.Int("count", 10, "words per language")
	seed := flag.String("seed", "", "text seed (empty for a random run)")
	languages := flag.Int("languages", 1, "number of languages to generate")
	compact := flag.Bool("compact", false, "join segments without spaces")
	persist := flag.Bool("persist", false, "store generated languages in the database")
	migrate := flag.Bool("migrate", false, "apply database migrations before generating")
	list := flag.Bool("list", false, "print stored languages and exit")
	show := flag.String("show", "", "print the stored language with this ID and exit")
	version := flag.Bool("version", false, "print version and exit")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	if *version {
		fmt.Println(app.BuildVersion())
		return
	}

	flags := app.Flags{
		Count:     -1,
		Seed:      *seed,
		Languages: *languages,
		Compact:   *compact,
		Persist:   *persist,
		Migrate:   *migrate,
		Debug:     *debug,
		List:      *list,
		Show:      *show,
	}
	// An explicit -count wins over the config file.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "count" {
			flags.Count = *count
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, flags, os.Stdout); err != nil {
		slog.Error("phonogen failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
