package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/doclens/internal/analyzer"
	"github.com/dgallion1/doclens/internal/api"
	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/pipeline"
	"github.com/dgallion1/doclens/internal/resultstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the doclens HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		runServer()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			log.Error("failed to load lexicon", "path", cfg.LexiconPath, "error", err)
			os.Exit(1)
		}
		lex = loaded
		log.Info("loaded lexicon overrides", "path", cfg.LexiconPath)
	}

	var rs *resultstore.Client
	if cfg.ResultstoreURL != "" {
		rs = resultstore.NewClient(cfg.ResultstoreURL, cfg.ResultstoreAPIKey)
	}

	engine := analyzer.New(lex)

	orch := pipeline.NewOrchestrator(cfg, engine, rs, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, lex, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if rs != nil {
			rs.Close()
		}
	}()

	log.Info("starting doclens", "port", cfg.Port, "workers", cfg.WorkerCount)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
