package main

import (
	"context"
	"errors"
	"fmt"

	"yield-ai/internal/app"
	"yield-ai/internal/platform/config"
	"yield-ai/internal/platform/logger"

	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("database.dsn is not configured (set DATABASE_DSN)")

type rootFlags struct {
	configFile string
}

// env lo resuelve cada subcomando al ejecutarse, no al construir el árbol.
type env struct {
	cfg  config.Config
	log  logger.Logger
	deps *app.Deps
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "yieldctl",
		Short:         "Operational commands for the Yield-AI service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ./config.yaml or ./configs/config.yaml)")

	root.AddCommand(
		newMigrateCmd(&flags),
		newSeedCmd(&flags),
		newReindexCmd(&flags),
		newBreedsCmd(&flags),
		newBreedersCmd(&flags),
		newContactsCmd(&flags),
	)
	return root
}

func loadEnv(ctx context.Context, flags *rootFlags) (*env, error) {
	var (
		cfg config.Config
		err error
	)
	if flags.configFile != "" {
		cfg, err = config.LoadFile(flags.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "yieldctl",
	})

	deps, err := app.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open dependencies: %w", err)
	}
	return &env{cfg: cfg, log: log, deps: deps}, nil
}

func (e *env) close() {
	_ = e.deps.Close()
}
