package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sferro/chatlens/internal/config"
	"github.com/sferro/chatlens/internal/render"
	"github.com/sferro/chatlens/internal/store"
)

func reportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Render a printable analysis report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			data, _, err := loadAnalysis(db, args[0])
			if err != nil {
				return err
			}

			if outPath != "" {
				color.NoColor = true
				if err := os.WriteFile(outPath, []byte(render.Report(data)), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				fmt.Fprintf(os.Stderr, "report written to %s\n", outPath)
				return nil
			}

			fmt.Print(render.Report(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the report to a file instead of stdout")

	return cmd
}
