package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homier/hashtab/internal/report"
)

func initCheck() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Runs the container self-check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := setup(rootCmd.Options)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := report.SelfCheck(); err != nil {
				return err
			}
			log.Info("self-check passed")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")

			return err
		},
	})
}
