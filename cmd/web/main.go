// Command web serves the conversion HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kobune/eightatena/internal/company"
	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/health"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/logger"
	"github.com/kobune/eightatena/internal/web"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("eightatena-web")

	var (
		port            = fs.Int64Long("port", 3000, "HTTP server port")
		dataDir         = fs.StringLong("data-dir", "data", "dictionary directory")
		adminPassword   = fs.StringLong("admin-password", "", "basic-auth password for admin endpoints")
		kanaEngine      = fs.StringEnumLong("kana-engine", "transliterator backend", "kagome", "none")
		partialMatch    = fs.BoolLong("partial-match", "compose company kana from dictionary tokens")
		partialMinLen   = fs.IntLong("partial-token-min-len", 2, "minimum token length for partial matching")
		acronymCharwise = fs.BoolLong("acronym-charwise", "expand short ASCII runs letter by letter")
		acronymMaxLen   = fs.IntLong("acronym-max-len", 3, "longest ASCII run expanded char-by-char")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *adminPassword == "" {
		return errors.New("admin-password is required")
	}

	log := logger.Init()

	var tr kana.Transliterator
	if *kanaEngine == "none" {
		tr = kana.Null{}
	} else {
		k, err := kana.NewKagome()
		if err != nil {
			return err
		}
		tr = k
	}

	opts := company.Options{
		PartialMatch:       *partialMatch,
		PartialTokenMinLen: *partialMinLen,
		AcronymCharwise:    *acronymCharwise,
		AcronymMaxLen:      *acronymMaxLen,
	}

	store := dict.NewStore(*dataDir)
	log.Info("dictionaries loaded", "dir", *dataDir, "versions", store.Tables().Versions())

	router := web.NewRouter(store, tr, opts, *adminPassword, log)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("GET /health", health.Handler())
	mux.Handle("/api/", router.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down gracefully", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", "error", err)
		}
	}()

	log.Info("starting web server", "port", *port, "kana_engine", tr.Name())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
