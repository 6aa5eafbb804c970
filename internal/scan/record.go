package scan

import (
	"github.com/rs/zerolog/log"

	"github.com/akinloluwami/domains-lookup/pkg/domain"
	"github.com/akinloluwami/domains-lookup/pkg/results"
)

// record classifies one lookup result into exactly one of three outcomes:
// taken, available within budget (recorded), or available but over budget
// (logged, not recorded). A domain without a reported price is never
// excluded by the budget filter.
//
// The concise per-domain status lines are suppressed in verbose mode,
// where the client already logs the raw payloads.
func record(cfg *domain.Config, suffix string, r domain.LookupResult, acc *results.Collection) {
	if !r.Available {
		if !cfg.Verbose {
			log.Debug().Str("domain", r.Domain).Msg("Taken")
		}
		return
	}

	if cfg.MaxPrice != nil && r.Price != nil && *r.Price > *cfg.MaxPrice {
		if !cfg.Verbose {
			log.Info().
				Str("domain", r.Domain).
				Float64("price", *r.Price).
				Float64("max_price", *cfg.MaxPrice).
				Msg("Available but over budget")
		}
		return
	}

	acc.Add(suffix, domain.Match{Domain: r.Domain, Price: r.Price})

	if !cfg.Verbose {
		ev := log.Info().Str("domain", r.Domain)
		if r.Price != nil {
			ev = ev.Float64("price", *r.Price)
		}
		ev.Msg("Available")
	}
}
