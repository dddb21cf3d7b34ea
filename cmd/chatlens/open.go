package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sferro/chatlens/internal/config"
	"github.com/sferro/chatlens/internal/open"
	"github.com/sferro/chatlens/internal/store"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open the chat export behind a stored analysis in $EDITOR",
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

			return open.OpenSource(db, args[0])
		},
	}
}
