package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Generator GeneratorConfig `yaml:"generator"`
	Tables    TablesConfig    `yaml:"tables"`
	Database  DatabaseConfig  `yaml:"database"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// GeneratorConfig holds word generation parameters.
type GeneratorConfig struct {
	NoConsLow          float64 `yaml:"no_cons_low"          env:"GENERATOR_NO_CONS_LOW"          env-default:"0.33"`
	NoConsHigh         float64 `yaml:"no_cons_high"         env:"GENERATOR_NO_CONS_HIGH"         env-default:"0.66"`
	BaseSyllableLambda float64 `yaml:"base_syllable_lambda" env:"GENERATOR_BASE_SYLLABLE_LAMBDA" env-default:"10"`
	RemoveLength       float64 `yaml:"remove_length"        env:"GENERATOR_REMOVE_LENGTH"        env-default:"0.33"`
	Perturbation       float64 `yaml:"perturbation"         env:"GENERATOR_PERTURBATION"         env-default:"1.5"`
	Compact            bool    `yaml:"compact"              env:"GENERATOR_COMPACT"              env-default:"false"`
	Vocabulary         int     `yaml:"vocabulary"           env:"GENERATOR_VOCABULARY"           env-default:"10"`
}

// TablesConfig points at the reference tables. An empty Dir selects the
// tables embedded in the binary.
type TablesConfig struct {
	Dir string `yaml:"dir" env:"TABLES_DIR"`
}

// DatabaseConfig holds PostgreSQL connection settings. The database is only
// used when Enabled is set.
type DatabaseConfig struct {
	Enabled         bool          `yaml:"enabled"            env:"DATABASE_ENABLED"            env-default:"false"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// RetentionDays is how long cmd/prune keeps stored languages.
	RetentionDays int `yaml:"retention_days" env:"DATABASE_RETENTION_DAYS" env-default:"90"`
}
