// Command merchant-pos-buddy runs the POS Buddy conversation service: a
// scripted assistant that walks merchants through POS installation, service
// requests, FAQs, and a coin-rewarded feedback survey over a small JSON API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/config"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/content"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/dialog"
	httpapi "github.com/prabhakardwi/merchant-pos-buddy/internal/http"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/http/handlers"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/http/middleware"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/observability"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/repo"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/sched"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/sim"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing (no-op unless OTEL_ENABLED).
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	// Optional SQLite archive for submitted requests and completed surveys.
	var archive *repo.Archive
	var store handlers.RequestStore
	if cfg.DBPath != "" {
		db, err := repo.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open archive db failed")
		}
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("archive migration failed")
		}
		archive = repo.NewArchive(db)
		store = archive
		log.Info().Str("path", cfg.DBPath).Msg("request archive enabled")
	} else {
		log.Info().Msg("request archive disabled (DB_PATH empty)")
	}

	timers := sched.NewTimers()
	defer timers.Stop()

	mgr := dialog.NewManager(dialog.ManagerConfig{
		Content:   content.NewStore(),
		Backend:   sim.New(cfg.RandSeed),
		Scheduler: timers,
		Archive:   archiveOrNil(archive),
		Logger:    log.Logger,
		Pacing: dialog.Pacing{
			Short: cfg.Pacing.Short,
			Step:  cfg.Pacing.Step,
			Long:  cfg.Pacing.Long,
		},
		TTL:             cfg.SessionTTL,
		DefaultLanguage: cfg.DefaultLanguage,
	})
	defer mgr.Shutdown()

	middleware.RegisterSessionGauge(mgr.Count)

	r := gin.New()
	httpapi.RegisterRoutes(r, mgr, store, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
}

// archiveOrNil avoids handing the manager a non-nil interface wrapping a nil
// *repo.Archive.
func archiveOrNil(a *repo.Archive) dialog.Archive {
	if a == nil {
		return nil
	}
	return a
}
