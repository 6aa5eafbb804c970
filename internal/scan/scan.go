// Package scan implements the availability scan across every combination
package scan

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/akinloluwami/domains-lookup/pkg/domain"
	"github.com/akinloluwami/domains-lookup/pkg/results"
	"github.com/akinloluwami/domains-lookup/pkg/util"
)

// Checker performs one batched availability lookup. *api.Client satisfies
// it; tests substitute their own implementation.
type Checker interface {
	CheckAvailability(ctx context.Context, domains []string) ([]domain.LookupResult, error)
}

// Run walks every combination for every configured suffix, checks
// availability in batches and records matches. The accumulated matches are
// flushed to the output file after each suffix and again at the very end.
//
// Cancelling the context (the signal handler's job) stops the scan early
// but still flushes everything recorded so far, so an interrupted run
// leaves a valid output file behind and is not treated as a failure.
func Run(ctx context.Context, cfg *domain.Config, client Checker) error {
	acc := results.New(cfg.Suffixes)

	for _, suffix := range cfg.Suffixes {
		if err := scanSuffix(ctx, cfg, client, suffix, acc); err != nil {
			log.Warn().Str("suffix", suffix).Msg("Scan interrupted")
			break
		}
		// Per-suffix checkpoint; a failed write is logged inside finalize
		// and does not stop the remaining suffixes.
		_ = finalize(acc, cfg.OutputFile)
	}

	return finalize(acc, cfg.OutputFile)
}

// scanSuffix runs the batch loop for one suffix: fresh generator, fixed
// size chunks in lexicographic order, one network call per chunk with the
// configured pause between chunks. The only error it returns is context
// cancellation; chunk failures are logged and skipped so a single flaky
// call never aborts the run.
func scanSuffix(ctx context.Context, cfg *domain.Config, client Checker, suffix string, acc *results.Collection) error {
	log.Info().
		Str("suffix", suffix).
		Int("letters", cfg.Letters).
		Int("batch_size", cfg.BatchSize).
		Msg("Scanning combinations")

	gen := util.NewGenerator(cfg.Letters)
	batch := 0

	for {
		chunk := util.NextChunk(gen, suffix, cfg.BatchSize)
		if len(chunk) == 0 {
			log.Info().Str("suffix", suffix).Int("batches", batch).Msg("Suffix scan complete")
			return nil
		}

		if batch > 0 {
			if err := wait(ctx, cfg.BatchDelay); err != nil {
				return err
			}
		}
		batch++

		lookups, err := client.CheckAvailability(ctx, chunk)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().
				Err(err).
				Str("suffix", suffix).
				Int("batch", batch).
				Int("domains", len(chunk)).
				Msg("Availability check failed, skipping batch")
			continue
		}
		if len(lookups) == 0 {
			log.Warn().
				Str("suffix", suffix).
				Int("batch", batch).
				Msg("Availability response contained no results, skipping batch")
			continue
		}

		// Results are matched by their own domain field, never by position;
		// requested domains missing from the response stay unclassified.
		for _, r := range lookups {
			record(cfg, suffix, r, acc)
		}
	}
}

// wait blocks for the configured batch delay or until the context is
// cancelled, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// finalize writes the accumulated matches to the output file. It is the
// single flush path shared by suffix completion, normal completion and
// signal-triggered shutdown.
func finalize(acc *results.Collection, path string) error {
	if err := acc.Save(path); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to save results")
		return err
	}
	log.Info().Str("file", path).Int("matches", acc.Total()).Msg("Results saved")
	return nil
}
