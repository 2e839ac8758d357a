package app

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/hashtab/internal/config"
	"github.com/homier/hashtab/internal/dataset"
	"github.com/homier/hashtab/internal/report"
)

func initRun() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Loads the dataset into both containers and prints their metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(rootCmd.Options)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runReport(cfg, afero.NewOsFs(), cmd.OutOrStdout(), log)
		},
	})
}

func runReport(cfg config.Config, fs afero.Fs, out io.Writer, log *zap.SugaredLogger) error {
	if cfg.SelfCheck {
		if err := report.SelfCheck(); err != nil {
			return err
		}
		log.Info("self-check passed")
	}

	ds, err := dataset.Load(fs, cfg.DatasetPath)
	switch {
	case err != nil:
		log.Warnw("dataset unavailable, using sample data", "path", cfg.DatasetPath, zap.Error(err))
		ds = dataset.Sample()
	case ds.Empty():
		log.Warnw("dataset has no rows, using sample data", "path", cfg.DatasetPath)
		ds = dataset.Sample()
	}

	log.Infow("dataset loaded", "titles", len(ds.Titles), "pairs", len(ds.Pairs))

	r, err := report.Build(ds)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	log.Infow("containers loaded",
		"set_collisions", r.Set.Stats.Collisions,
		"set_load_factor", r.Set.Stats.LoadFactor,
		"map_collisions", r.Map.Stats.Collisions,
		"map_load_factor", r.Map.Stats.LoadFactor,
	)

	return r.Print(out)
}
