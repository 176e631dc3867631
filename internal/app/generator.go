package app

import (
	"fmt"

	"github.com/heartmarshall/phonogen/internal/config"
	"github.com/heartmarshall/phonogen/internal/phonology"
	"github.com/heartmarshall/phonogen/internal/reftable"
)

// GeneratorOptions converts the generator section of the config into
// phonology options.
func GeneratorOptions(cfg config.GeneratorConfig) phonology.Options {
	return phonology.Options{
		NoConsLow:          cfg.NoConsLow,
		NoConsHigh:         cfg.NoConsHigh,
		BaseSyllableLambda: cfg.BaseSyllableLambda,
		RemoveLength:       cfg.RemoveLength,
		Perturbation:       cfg.Perturbation,
		Compact:            cfg.Compact,
	}
}

// LoadTables reads the reference tables from cfg.Dir, or returns the
// embedded set when Dir is empty.
func LoadTables(cfg config.TablesConfig) (*reftable.Tables, error) {
	if cfg.Dir == "" {
		tables, err := reftable.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded tables: %w", err)
		}
		return tables, nil
	}

	tables, err := reftable.LoadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("load tables from %s: %w", cfg.Dir, err)
	}
	return tables, nil
}
