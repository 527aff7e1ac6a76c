// Package cli implements the redis-populate command tree. Commands depend
// only on the driving and driven ports; main wires concrete services in
// through Init.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// version is shown by the version command; main overrides it through Init.
var version = "dev"

// Dependencies wires adapters and defaults into the command tree.
type Dependencies struct {
	Version string

	// Keys are the destination key names, config overrides already applied.
	Keys domain.Keys

	// Counter serves the count command; it needs no store connection.
	Counter driving.Counter

	// ConnectStore dials the store on demand, so commands that never touch
	// it run without connection configuration.
	ConnectStore func(ctx context.Context) (driven.Store, error)

	// Service constructors, invoked once a store is connected.
	NewPopulator func(store driven.Store) driving.Populator
	NewPusher    func(store driven.Store, buffered bool) driving.Pusher
	NewInspector func(store driven.Store) driving.Inspector

	// Config-file defaults; flags take precedence.
	DefaultInput string
	DefaultChunk int
	NoStream     bool
}

var deps Dependencies

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "redis-populate",
	Short: "Load JSON datasets into a Redis-backed key-value store",
	Long: `redis-populate rebuilds Redis lists from JSON data files
(institutions, companies, degrees, roles), deduplicating where the
datasets overlap, and provides small diagnostic commands for counting
JSON objects and dumping the store's contents.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Init installs the dependencies. Call once from main before Execute.
func Init(d Dependencies) {
	deps = d
	if d.Version != "" {
		version = d.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// connectStore dials the store through the injected connector.
func connectStore(ctx context.Context) (driven.Store, error) {
	if deps.ConnectStore == nil {
		return nil, errors.New("store not configured")
	}
	return deps.ConnectStore(ctx)
}

// destKeys returns the destination key names.
func destKeys() domain.Keys {
	if deps.Keys == (domain.Keys{}) {
		return domain.DefaultKeys()
	}
	return deps.Keys
}

// chunkFor resolves the effective chunk size: flag beats config file beats
// the flag's built-in default.
func chunkFor(cmd *cobra.Command, flagValue int) int {
	if !cmd.Flags().Changed("chunk") && deps.DefaultChunk > 0 {
		return deps.DefaultChunk
	}
	return flagValue
}

// inputFor resolves the effective input path.
func inputFor(cmd *cobra.Command, flagValue string) string {
	if !cmd.Flags().Changed("input") && deps.DefaultInput != "" {
		return deps.DefaultInput
	}
	return flagValue
}

// requireFile verifies the input exists before any store access.
func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file not found: %s: %w", path, err)
	}
	return nil
}
