package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the Stack Exchange collector
type Config struct {
	// Stack Exchange API settings
	StackExchange StackExchangeConfig `yaml:"stack_exchange" json:"stack_exchange"`

	// Rate limiting configuration
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Collection parameters
	Collection CollectionConfig `yaml:"collection" json:"collection"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// StackExchangeConfig holds API-specific configuration
type StackExchangeConfig struct {
	APIKey   string        `yaml:"api_key" json:"api_key"`
	Site     string        `yaml:"site" json:"site"`
	PageSize int           `yaml:"page_size" json:"page_size"`
	MaxPages int           `yaml:"max_pages" json:"max_pages"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second" json:"requests_per_second"`
}

// CollectionConfig holds the question filter parameters for a run
type CollectionConfig struct {
	Tag         string `yaml:"tag" json:"tag"`
	MinAnswers  int    `yaml:"min_answers" json:"min_answers"`
	MinScore    int    `yaml:"min_score" json:"min_score"`
	MaxCount    int    `yaml:"max_count" json:"max_count"`
	UseMockData bool   `yaml:"use_mock_data" json:"use_mock_data"`
	MockSeed    int64  `yaml:"mock_seed" json:"mock_seed"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	BaseDirectory    string `yaml:"base_directory" json:"base_directory"`
	CheckpointPrefix string `yaml:"checkpoint_prefix" json:"checkpoint_prefix"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		StackExchange: StackExchangeConfig{
			Site:     "stackoverflow",
			PageSize: 100,
			MaxPages: 5,
			Timeout:  30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 30,
		},
		Collection: CollectionConfig{
			Tag:         "nlp",
			MinAnswers:  1,
			MinScore:    0,
			MaxCount:    10,
			UseMockData: false,
		},
		Output: OutputConfig{
			BaseDirectory:    "data/raw",
			CheckpointPrefix: "questions",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if apiKey := os.Getenv("STACK_EXCHANGE_API_KEY"); apiKey != "" {
		c.StackExchange.APIKey = apiKey
	}
	if site := os.Getenv("STACK_EXCHANGE_SITE"); site != "" {
		c.StackExchange.Site = site
	}
	if batch := os.Getenv("STACK_EXCHANGE_BATCH_SIZE"); batch != "" {
		var val int
		fmt.Sscanf(batch, "%d", &val)
		if val > 0 {
			c.StackExchange.PageSize = val
		}
	}
	if pages := os.Getenv("STACK_EXCHANGE_MAX_PAGES"); pages != "" {
		var val int
		fmt.Sscanf(pages, "%d", &val)
		if val > 0 {
			c.StackExchange.MaxPages = val
		}
	}
	if rps := os.Getenv("STACK_EXCHANGE_RATE_LIMIT"); rps != "" {
		var val int
		fmt.Sscanf(rps, "%d", &val)
		if val > 0 {
			c.RateLimit.RequestsPerSecond = val
		}
	}

	if tag := os.Getenv("TAG"); tag != "" {
		c.Collection.Tag = tag
	}
	if minAnswers := os.Getenv("MIN_ANSWERS"); minAnswers != "" {
		var val int
		fmt.Sscanf(minAnswers, "%d", &val)
		if val >= 0 {
			c.Collection.MinAnswers = val
		}
	}
	if minScore := os.Getenv("MIN_SCORE"); minScore != "" {
		var val int
		fmt.Sscanf(minScore, "%d", &val)
		if val >= 0 {
			c.Collection.MinScore = val
		}
	}
	if maxCount := os.Getenv("MAX_COUNT"); maxCount != "" {
		var val int
		fmt.Sscanf(maxCount, "%d", &val)
		if val > 0 {
			c.Collection.MaxCount = val
		}
	}
	if mock := os.Getenv("USE_MOCK_DATA"); mock != "" {
		c.Collection.UseMockData = strings.ToLower(mock) == "true"
	}
	if seed := os.Getenv("STACKCOLLECT_MOCK_SEED"); seed != "" {
		var val int64
		fmt.Sscanf(seed, "%d", &val)
		c.Collection.MockSeed = val
	}

	if outputDir := os.Getenv("STACKCOLLECT_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}

	if logLevel := os.Getenv("STACKCOLLECT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("STACKCOLLECT_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".stackcollect.yaml",
		".stackcollect.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "stackcollect", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "stackcollect", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".stackcollect.yaml"),
		filepath.Join(os.Getenv("HOME"), ".stackcollect.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.StackExchange.Site == "" {
		errs = append(errs, errors.New("site is required"))
	}
	if c.StackExchange.PageSize <= 0 {
		errs = append(errs, errors.New("page size must be positive"))
	}
	if c.StackExchange.MaxPages <= 0 {
		errs = append(errs, errors.New("max pages must be positive"))
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("requests per second must be positive"))
	}

	if c.Collection.Tag == "" {
		errs = append(errs, errors.New("tag is required"))
	}
	if c.Collection.MinAnswers < 0 {
		errs = append(errs, errors.New("min answers must not be negative"))
	}
	if c.Collection.MinScore < 0 {
		errs = append(errs, errors.New("min score must not be negative"))
	}
	if c.Collection.MaxCount <= 0 {
		errs = append(errs, errors.New("max count must be positive"))
	}

	if c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output base directory is required"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error", "fatal", "disabled", "":
	default:
		errs = append(errs, fmt.Errorf("unknown log level: %s", c.Logging.Level))
	}

	if len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
	}

	return nil
}
