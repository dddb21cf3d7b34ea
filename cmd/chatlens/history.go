package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sferro/chatlens/internal/config"
	"github.com/sferro/chatlens/internal/store"
)

func historyCmd() *cobra.Command {
	var jsonOut bool
	var deleteID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored analyses",
		Args:  cobra.NoArgs,
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

			if deleteID != "" {
				if err := db.Delete(deleteID); err != nil {
					return fmt.Errorf("delete %s: %w", deleteID, err)
				}
				fmt.Fprintf(os.Stderr, "deleted %s\n", deleteID)
				return nil
			}

			rows, err := db.List(cfg.HistoryLimit)
			if err != nil {
				return fmt.Errorf("list analyses: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			if len(rows) == 0 {
				fmt.Fprintln(os.Stderr, "no stored analyses (run 'chatlens analyze <file>' first)")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tANALYZED\tFILE\tMESSAGES\tPARTICIPANTS")
			for _, a := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					a.ID, a.AnalyzedAt, a.FileName, a.TotalMessages, strings.Join(a.Participants, ", "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&deleteID, "delete", "", "Delete the analysis with the given ID")

	return cmd
}
