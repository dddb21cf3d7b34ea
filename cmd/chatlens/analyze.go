package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sferro/chatlens/internal/analyze"
	"github.com/sferro/chatlens/internal/config"
	"github.com/sferro/chatlens/internal/parse"
	"github.com/sferro/chatlens/internal/store"
	"github.com/sferro/chatlens/internal/tui"
)

func analyzeCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a WhatsApp chat export and open the dashboard",
		Long: `Parses a WhatsApp text export, derives engagement statistics and interest
scores, and opens an interactive dashboard. When stdout is not a terminal
(or with --json) the ChatData aggregate is printed as JSON instead.`,
		Args: cobra.ExactArgs(1),
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

			data, cached, err := loadAnalysis(db, args[0])
			if err != nil {
				return err
			}
			if cached {
				fmt.Fprintln(os.Stderr, "file unchanged, using stored analysis")
			}

			if jsonOut || !term.IsTerminal(int(os.Stdout.Fd())) {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			return tui.Run(data, filepath.Base(args[0]))
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the analysis as JSON instead of opening the dashboard")

	return cmd
}

// loadAnalysis runs the parse+analyze pipeline for path, reusing the stored
// snapshot when the file is unchanged. The returned bool reports reuse.
func loadAnalysis(db *store.DB, path string) (*analyze.ChatData, bool, error) {
	if filepath.Ext(path) != ".txt" {
		return nil, false, fmt.Errorf("%s: only .txt chat exports are supported", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if data, _, err := db.Lookup(abs, info.ModTime().Unix(), info.Size()); err == nil && data != nil {
		return data, true, nil
	}

	chat, err := parse.ParseFile(path)
	if err != nil {
		return nil, false, err
	}
	if len(chat.Messages) == 0 {
		return nil, false, fmt.Errorf(
			"no messages found in %s - is it a WhatsApp chat export? (run 'chatlens doctor %s' to inspect the format)",
			path, path)
	}

	data, err := analyze.Analyze(chat)
	if err != nil {
		return nil, false, err
	}

	if _, err := db.Put(abs, info.ModTime().Unix(), info.Size(), data); err != nil {
		// history is best effort; the analysis itself still succeeded
		fmt.Fprintf(os.Stderr, "warn: store analysis: %v\n", err)
	}

	return data, false, nil
}
