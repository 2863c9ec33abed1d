// GraphNote AI server entry point. Loads env config, wires the completion
// client and generation pipeline, and serves /health and /generate.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/graphnote/ai-server/internal/completion"
	"github.com/graphnote/ai-server/internal/config"
	"github.com/graphnote/ai-server/internal/generate"
	"github.com/graphnote/ai-server/internal/logging"
	"github.com/graphnote/ai-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env if present (no-op if missing).
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Init("")
		logging.Logger.Fatalf("failed to load configuration: %v", err)
	}

	logging.Init(cfg.LogFile)
	log := logging.Logger

	if !cfg.AuthEnabled() {
		log.Warn("MODEL_SERVER_API_KEY not set; /generate is unauthenticated")
	}
	log.WithField("base_url", cfg.VLLMBaseURL).WithField("model", cfg.VLLMModel).Info("completion endpoint configured")

	svc := generate.NewService(completion.NewClient(cfg))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, svc).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
