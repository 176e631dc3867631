package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. Callers
// that override fields afterwards (e.g. from flags) should call it again.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}

func (g GeneratorConfig) validate() error {
	probs := []struct {
		name  string
		value float64
	}{
		{"no_cons_low", g.NoConsLow},
		{"no_cons_high", g.NoConsHigh},
		{"remove_length", g.RemoveLength},
	}
	for _, p := range probs {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be in [0, 1] (got %v)", p.name, p.value)
		}
	}
	if g.NoConsLow > g.NoConsHigh {
		return fmt.Errorf("no_cons_low must not exceed no_cons_high (got %v > %v)", g.NoConsLow, g.NoConsHigh)
	}
	if g.BaseSyllableLambda < 0 {
		return fmt.Errorf("base_syllable_lambda must be >= 0 (got %v)", g.BaseSyllableLambda)
	}
	if g.Perturbation < 0 {
		return fmt.Errorf("perturbation must be >= 0 (got %v)", g.Perturbation)
	}
	if g.Vocabulary < 0 {
		return fmt.Errorf("vocabulary must be >= 0 (got %d)", g.Vocabulary)
	}
	return nil
}

func (d DatabaseConfig) validate() error {
	if !d.Enabled {
		return nil
	}
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required when the database is enabled")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in [0, max_conns] (got %d)", d.MinConns)
	}
	if d.RetentionDays < 1 {
		return fmt.Errorf("retention_days must be >= 1 (got %d)", d.RetentionDays)
	}
	return nil
}
