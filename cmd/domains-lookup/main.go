// Package main provides the entry point for the domains-lookup application.
//
// domains-lookup enumerates every fixed-length combination of lowercase
// letters, appends one or more domain suffixes and queries the registrar
// availability API in batches. Confirmed-available domains, optionally
// filtered by a price ceiling, are collected and written to a JSON file
// grouped by suffix — at the end of each suffix, at completion, and on
// SIGINT/SIGTERM.
//
// The application is structured following standard Go project layout
// conventions, with packages organized by functionality:
//
// - cmd/domains-lookup: Main application entry point
// - internal/cli: Command line interface
// - internal/scan: Batch loop, result classification and persistence triggers
// - pkg/api: Availability API client
// - pkg/config: Configuration handling
// - pkg/domain: Domain-related models
// - pkg/results: Accumulated match collection and output file
// - pkg/util: Candidate generation helpers
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/akinloluwami/domains-lookup/internal/cli"
)

func main() {
	// Configure zerolog with console output and millisecond precision
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("domains-lookup failed")
		os.Exit(1)
	}
}
