// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Feed     FeedConfig     `yaml:"feed"`
	LLM      LLMConfig      `yaml:"llm"`
	Rating   RatingConfig   `yaml:"rating"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings for the
// favorites store. When disabled, favorites live in memory only.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// CatalogConfig selects where listings come from.
type CatalogConfig struct {
	Source string `yaml:"source"` // static, feed
}

// FeedConfig defines scraper feed settings.
type FeedConfig struct {
	URL       string          `yaml:"url"`
	Searches  []SearchConfig  `yaml:"searches"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// SearchConfig is one make/model pair the feed scrapes per refresh.
type SearchConfig struct {
	Make  string `yaml:"make"`
	Model string `yaml:"model"`
}

// RateLimitConfig defines scraper rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// LLMConfig defines LLM backend settings for query extraction.
type LLMConfig struct {
	Backend      string             `yaml:"backend"` // none, ollama, openai_compat
	Ollama       OllamaConfig       `yaml:"ollama"`
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	Timeout      time.Duration      `yaml:"timeout"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// RatingConfig defines overrides for the rating factor weights. Zero
// values fall back to the built-in defaults.
type RatingConfig struct {
	Weights RatingWeights `yaml:"weights"`
}

// RatingWeights defines the relative weight of each rating factor.
type RatingWeights struct {
	Value       float64 `yaml:"value"`
	Reliability float64 `yaml:"reliability"`
	Features    float64 `yaml:"features"`
	Condition   float64 `yaml:"condition"`
	Performance float64 `yaml:"performance"`
	Efficiency  float64 `yaml:"efficiency"`
	Style       float64 `yaml:"style"`
}

// Zero reports whether no weight override was configured.
func (w RatingWeights) Zero() bool {
	return w == RatingWeights{}
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given:
// static catalog, in-memory favorites, no LLM.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCatalogDefaults(&cfg.Catalog)
	applyFeedDefaults(&cfg.Feed)
	applyLLMDefaults(&cfg.LLM)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.Source == "" {
		c.Source = "static"
	}
}

func applyFeedDefaults(f *FeedConfig) {
	if f.RateLimit.PerSecond == 0 {
		f.RateLimit.PerSecond = 1.0
	}
	if f.RateLimit.Burst == 0 {
		f.RateLimit.Burst = 2
	}
	if f.RateLimit.DailyLimit == 0 {
		f.RateLimit.DailyLimit = 200
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = "none"
	}
	if l.Timeout == 0 {
		l.Timeout = 10 * time.Second
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RefreshInterval == 0 {
		s.RefreshInterval = 6 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when database is enabled"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when database is enabled"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when database is enabled"))
		}
	}

	switch cfg.Catalog.Source {
	case "static":
	case "feed":
		if cfg.Feed.URL == "" {
			errs = append(errs, fmt.Errorf("feed.url is required when catalog.source is feed"))
		}
	default:
		errs = append(
			errs,
			fmt.Errorf("catalog.source must be one of: static, feed (got %q)", cfg.Catalog.Source),
		)
	}

	switch cfg.LLM.Backend {
	case "none":
	case "ollama":
		if cfg.LLM.Ollama.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.ollama.endpoint is required when backend is ollama"),
			)
		}
	case "openai_compat":
		if cfg.LLM.OpenAICompat.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.openai_compat.endpoint is required when backend is openai_compat"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"llm.backend must be one of: none, ollama, openai_compat (got %q)",
				cfg.LLM.Backend,
			),
		)
	}

	if !cfg.Rating.Weights.Zero() {
		sum := cfg.Rating.Weights.Value + cfg.Rating.Weights.Reliability +
			cfg.Rating.Weights.Features + cfg.Rating.Weights.Condition +
			cfg.Rating.Weights.Performance + cfg.Rating.Weights.Efficiency +
			cfg.Rating.Weights.Style
		if sum < 0.99 || sum > 1.01 {
			errs = append(errs, fmt.Errorf("rating.weights must sum to 1.0 (got %.3f)", sum))
		}
	}

	return errors.Join(errs...)
}
