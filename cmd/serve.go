package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/iksnae/ai-wrapped/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve saved shares over HTTP",
	Long: `Start the share API server. Configuration comes from the
environment (a .env file is honored): PORT for the listen address and
WRAPPED_DB for the share database path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.Load()
		if err != nil {
			return err
		}

		store, err := internal.OpenShareStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           server.NewRouter(store),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			internal.LogInfo("share server listening on %s", cfg.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
