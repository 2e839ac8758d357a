package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/homier/hashtab/internal/cli"
	"github.com/homier/hashtab/internal/config"
)

var rootCmd = cli.Init("bookindex")

func MustExecute(ctx context.Context) {
	initRun()
	initCheck()
	rootCmd.MustExecute(ctx)
}

func newLogger(env config.Environment) (*zap.SugaredLogger, error) {
	var (
		log *zap.Logger
		err error
	)

	if env == config.EnvDev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}

	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log.Sugar(), nil
}

// setup loads the configuration and builds a logger for it.
func setup(opts cli.Options) (config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	if opts.DatasetPath != "" {
		cfg.DatasetPath = opts.DatasetPath
	}

	log, err := newLogger(cfg.Environment)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, log, nil
}
