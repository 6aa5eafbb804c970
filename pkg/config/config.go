// Package config provides functionality for loading and validating configuration
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/akinloluwami/domains-lookup/pkg/domain"
)

// DefaultConfigFileName is the default name for the optional configuration file
const DefaultConfigFileName = "config.json"

const (
	defaultEndpoint = "https://api.godaddy.com/v1/domains/available"
	oteEndpoint     = "https://api.ote-godaddy.com/v1/domains/available"

	defaultBatchSize  = 50
	defaultBatchDelay = 2 * time.Second
	defaultOutputFile = "domains.json"
)

// fileConfig mirrors the configuration file structure. Every field is an
// override; anything absent keeps its default.
type fileConfig struct {
	Endpoint     string `json:"endpoint"`
	BatchSize    int    `json:"batch_size"`
	BatchDelayMS int    `json:"batch_delay_ms"`
	OutputFile   string `json:"output_file"`
}

// Load builds the run configuration from defaults, the environment and the
// optional configuration file. Credentials come from GODADDY_API_KEY and
// GODADDY_API_SECRET, read from the process environment or a .env file in
// the working directory; setting GODADDY_USE_OTE=true targets the sandbox
// endpoint instead of production.
//
// The CLI fills in Letters, Suffixes, MaxPrice and Verbose afterwards;
// Validate must be called before the configuration is used.
func Load(configFileName string) (*domain.Config, error) {
	// The real environment always wins over the .env file.
	_ = godotenv.Load()

	cfg := &domain.Config{
		APIKey:     os.Getenv("GODADDY_API_KEY"),
		APISecret:  os.Getenv("GODADDY_API_SECRET"),
		Endpoint:   defaultEndpoint,
		BatchSize:  defaultBatchSize,
		BatchDelay: defaultBatchDelay,
		OutputFile: defaultOutputFile,
	}
	if strings.EqualFold(os.Getenv("GODADDY_USE_OTE"), "true") {
		cfg.Endpoint = oteEndpoint
	}

	// Check if config file exists
	if _, err := os.Stat(configFileName); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults
	if fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if fc.BatchSize > 0 {
		cfg.BatchSize = fc.BatchSize
	}
	if fc.BatchDelayMS > 0 {
		cfg.BatchDelay = time.Duration(fc.BatchDelayMS) * time.Millisecond
	}
	if fc.OutputFile != "" {
		cfg.OutputFile = fc.OutputFile
	}

	log.Debug().Str("file", configFileName).Msg("Loaded configuration file")
	return cfg, nil
}

// Validate checks that everything required for a run is present. Any error
// returned here is startup-fatal.
func Validate(cfg *domain.Config) error {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return errors.New("missing credentials: set GODADDY_API_KEY and GODADDY_API_SECRET in the environment or a .env file")
	}
	if cfg.Letters < 1 {
		return fmt.Errorf("combination length must be at least 1, got %d", cfg.Letters)
	}
	if len(cfg.Suffixes) == 0 {
		return errors.New("at least one suffix is required")
	}
	if cfg.MaxPrice != nil && *cfg.MaxPrice < 0 {
		return fmt.Errorf("max price must not be negative, got %v", *cfg.MaxPrice)
	}
	return nil
}

// ParseSuffixes splits a comma-separated suffix list, trimming each entry
// and dropping empty ones. A missing leading dot is added so that "com" and
// ".com" mean the same thing. Order is preserved and duplicates are kept.
func ParseSuffixes(s string) []string {
	var suffixes []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		suffixes = append(suffixes, part)
	}
	return suffixes
}
