// Package cli implements the command line interface
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/akinloluwami/domains-lookup/internal/scan"
	"github.com/akinloluwami/domains-lookup/pkg/api"
	"github.com/akinloluwami/domains-lookup/pkg/config"
)

// Execute runs the domains-lookup CLI and returns an error if the run
// fails. Startup validation failures surface here; main logs them and
// exits non-zero.
func Execute() error {
	var (
		toFlag     string
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:   "domains-lookup <letters> [suffixes]",
		Short: "Enumerates letter combinations and checks domain availability",
		Long: `domains-lookup generates every combination of lowercase letters of the
given length, appends one or more domain suffixes and checks each name
against the registrar availability API in batches. Available domains, with
their price when one is reported, are written to a JSON file grouped by
suffix.

Credentials are read from GODADDY_API_KEY and GODADDY_API_SECRET, either
from the environment or a .env file in the working directory.`,
		Example: `  domains-lookup 3
  domains-lookup 2 .com,.net --to 50
  domains-lookup 4 io -v`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			letters, err := strconv.Atoi(args[0])
			if err != nil || letters < 1 {
				return fmt.Errorf("letters must be a positive integer, got %q", args[0])
			}

			suffixes := []string{".com"}
			if len(args) == 2 {
				suffixes = config.ParseSuffixes(args[1])
				if len(suffixes) == 0 {
					return fmt.Errorf("suffix list %q contains no usable suffixes", args[1])
				}
			}

			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			cfg.Letters = letters
			cfg.Suffixes = suffixes
			cfg.Verbose = verbose

			if cmd.Flags().Changed("to") {
				max, err := strconv.ParseFloat(toFlag, 64)
				if err != nil || max < 0 {
					return fmt.Errorf("--to must be a non-negative number, got %q", toFlag)
				}
				cfg.MaxPrice = &max
			}

			if err := config.Validate(cfg); err != nil {
				return err
			}

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			// An interrupt or termination signal cancels the scan; the
			// coordinator flushes everything recorded so far and returns
			// normally, so a signalled run still exits 0.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client := api.NewClient(cfg.APIKey, cfg.APISecret, cfg.Endpoint, cfg.Verbose)
			return scan.Run(ctx, cfg, client)
		},
	}

	root.Flags().StringVar(&toFlag, "to", "", "Maximum price; available domains above it are not recorded")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log raw request and response payloads instead of per-domain status lines")
	root.Flags().StringVar(&configFile, "config", config.DefaultConfigFileName, "Path to optional configuration file")

	return root.Execute()
}
