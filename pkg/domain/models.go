// Package domain contains domain-related models and logic
package domain

import "time"

// Config represents the full run configuration. It is built once at startup
// from the CLI arguments, the environment and the optional configuration
// file, and is never mutated afterwards.
type Config struct {
	// CLI surface
	Letters  int      // combination length, >= 1
	Suffixes []string // configured order preserved, duplicates allowed
	MaxPrice *float64 // price ceiling, nil means no cap
	Verbose  bool     // log raw payloads instead of per-domain lines

	// Credentials
	APIKey    string
	APISecret string

	// Tunables, overridable via the configuration file
	Endpoint   string
	BatchSize  int
	BatchDelay time.Duration
	OutputFile string
}

// LookupResult is the normalized outcome of an availability check for a
// single domain. Price is in major currency units; nil means the API
// reported no price at all.
type LookupResult struct {
	Domain    string
	Available bool
	Price     *float64
}

// Match is a domain confirmed available (and within budget, if a ceiling is
// configured) recorded for the final output.
type Match struct {
	Domain string   `json:"domain"`
	Price  *float64 `json:"price,omitempty"`
}
