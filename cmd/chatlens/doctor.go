package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sferro/chatlens/internal/config"
	"github.com/sferro/chatlens/internal/parse"
	"github.com/sferro/chatlens/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [file]",
		Short: "Self-check: verify config and DB, and sniff a chat file's format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  DB path:     %s\n", cfg.DBPath)
			fmt.Printf("  Listen addr: %s\n", cfg.ListenAddr)

			fmt.Println("\n=== Database ===")
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chatlens analyze' first)")
			} else {
				db, err := store.Open(cfg.DBPath)
				if err != nil {
					return fmt.Errorf("open db: %w", err)
				}
				defer db.Close()

				n, err := db.Count()
				if err != nil {
					return fmt.Errorf("count analyses: %w", err)
				}
				fmt.Printf("  Stored analyses: %d\n", n)

				if info, err := os.Stat(cfg.DBPath); err == nil {
					fmt.Printf("  Size: %.1f KB\n", float64(info.Size())/1024)
				}
			}

			if len(args) == 0 {
				return nil
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			rep := parse.Sniff(string(data))
			fmt.Printf("\n=== Format Sniff: %s ===\n", args[0])
			fmt.Printf("  Lines: %d total, %d non-empty, %d matched\n",
				rep.TotalLines, rep.NonEmpty, rep.Matched)
			for _, f := range rep.ByFormat {
				if f.Hits > 0 {
					fmt.Printf("  %-30s %d\n", f.Name, f.Hits)
				}
			}
			if rep.Matched == 0 {
				fmt.Println("  No known format matched. Sample lines:")
				for _, l := range rep.Unmatched {
					fmt.Printf("    %q\n", l)
				}
			} else if len(rep.Unmatched) > 0 {
				fmt.Println("  Unmatched lines become continuations; first samples:")
				for _, l := range rep.Unmatched {
					fmt.Printf("    %q\n", l)
				}
			}
			return nil
		},
	}
}
