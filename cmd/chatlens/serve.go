package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sferro/chatlens/internal/config"
	"github.com/sferro/chatlens/internal/server"
	"github.com/sferro/chatlens/internal/store"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local analysis HTTP API",
		Long: `Starts a local HTTP server. POST a chat export to /api/analyze to get the
ChatData aggregate as JSON; stored analyses are available under
/api/analyses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env overrides are optional
			godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			listen := cfg.ListenAddr
			if env := os.Getenv("CHATLENS_ADDR"); env != "" {
				listen = env
			}
			if addr != "" {
				listen = addr
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:    listen,
				Handler: server.New(db, cfg.HistoryLimit).Router(),
			}

			errCh := make(chan error, 1)
			go func() {
				fmt.Fprintf(os.Stderr, "listening on http://%s\n", listen)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config and CHATLENS_ADDR)")

	return cmd
}
