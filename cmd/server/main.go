// Package main is the entry point for the catalogodeleite product catalog service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"catalogodeleite/internal/config"
	"catalogodeleite/pkg/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "catalogodeleite",
		Short:         "Product catalog service with code/name search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (env overrides use the "+config.EnvPrefix+"_ prefix)")

	root.AddCommand(
		newServeCommand(opts),
		newSeedCommand(opts),
		newVersionCommand(),
	)
	return root
}

// loadConfigAndLogger is shared by every command that talks to the database.
func loadConfigAndLogger(opts *rootOptions) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	logger.SetDefault(log)

	return cfg, log, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
