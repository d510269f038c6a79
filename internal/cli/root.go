// Package cli is the chilli command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/config"
	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/logging"
)

// options holds the persistent flags and what PersistentPreRunE loads from them.
type options struct {
	cfgFile string
	debug   bool

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// newRootCmd builds the command tree. Running it without a subcommand
// starts the terminal UI.
func newRootCmd() *cobra.Command {
	opts := &options{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "chilli",
		Short: "Browse and play the chilli music-video catalog",
		Long: `chilli is a terminal client for the chilli music-video catalog.

Run without arguments to open the interactive player. The subcommands
query the catalog and print plain text or JSON.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.closer != nil {
				return opts.closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/chilli/config.toml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newSearchCmd(opts),
		newTracksCmd(opts),
		newStatsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// init loads the configuration and sets up logging. The root command logs
// to a file because the UI owns the terminal; subcommands log to stderr.
func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	o.cfg = cfg
	icons.Init(cfg.Icons)

	logOpts := logging.Options{
		Level:   cfg.LogLevel(),
		Debug:   o.debug,
		Console: cmd.ErrOrStderr(),
	}
	if cmd.Parent() == nil {
		file, err := cfg.LogFile()
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpLogSetup, err)
		}
		logOpts.File = file
	} else if !o.debug {
		logOpts.Level = "warn"
	}

	logger, closer, err := logging.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLogSetup, err)
	}
	o.log, o.closer = logger, closer
	return nil
}

// openCatalog opens the configured catalog, or the bundled one.
func (o *options) openCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(o.cfg.CatalogPath, catalog.WithLogger(o.log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpCatalogLoad, err)
	}
	return cat, nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
