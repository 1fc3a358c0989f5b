// Package main is the entry point for the prsync CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/croftworks/prsync/internal/app"
	"github.com/croftworks/prsync/internal/cli"
	"github.com/croftworks/prsync/internal/domain"
	"github.com/croftworks/prsync/internal/infra/config"
	"github.com/croftworks/prsync/internal/logger"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.NewLoader(cwd).Load()
	if err != nil {
		// Allow help and version output without configuration
		if errors.Is(err, domain.ErrMissingConfig) {
			return runWithoutContainer(err)
		}
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	container := app.New(ctx, cfg, log)

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

// runWithoutContainer handles cases where required configuration is missing.
// This keeps help and version usable outside a configured environment.
func runWithoutContainer(cfgErr error) error {
	if canRunWithoutConfig(os.Args[1:]) {
		return cli.NewRootCommand(nil, version).Execute()
	}
	return cfgErr
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	for _, arg := range args {
		switch arg {
		case "--version", "--help", "-h":
			return true
		}
	}
	return false
}
