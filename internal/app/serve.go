package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/archipelago/core"
	"github.com/katalvlaran/archipelago/internal/httpapi"
)

// shutdownGrace bounds how long in-flight requests may finish after a
// termination signal.
const shutdownGrace = 5 * time.Second

// serve exposes the built graph over HTTP until ctx is canceled or a
// SIGINT/SIGTERM arrives, then shuts the server down gracefully.
func (a *App) serve(ctx context.Context, g *core.Graph) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              a.cfg.ServeAddr,
		Handler:           httpapi.NewRouter(g, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http api listening",
			"addr", a.cfg.ServeAddr,
			"settlements", g.SettlementCount(),
			"highways", g.HighwayCount())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		// ListenAndServe only returns early on startup failure here;
		// ErrServerClosed belongs to the shutdown path below.
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "grace", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	return nil
}
