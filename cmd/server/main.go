package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdSHash/SleekSell/internal/config"
	"github.com/mdSHash/SleekSell/internal/infra"
	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/persist"
	"github.com/mdSHash/SleekSell/internal/router"
	"github.com/mdSHash/SleekSell/internal/service"
	"github.com/mdSHash/SleekSell/internal/store"
	"github.com/mdSHash/SleekSell/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Pretty console logs in development, JSON everywhere else.
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// ── Persistence backend ──────────────────────────────────────────────────
	var persistSt persist.Store
	switch cfg.PersistBackend {
	case "postgres":
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		gormSt, err := persist.NewGormStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to migrate inventory table")
		}
		persistSt = persist.NewBreakerStore(gormSt, infra.NewCircuitBreaker(infra.DefaultCBConfig()))
	case "file":
		persistSt = persist.NewFileStore(cfg.InventoryPath)
	default:
		log.Fatal().Str("backend", cfg.PersistBackend).Msg("unknown PERSIST_BACKEND")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// ── In-memory register state ─────────────────────────────────────────────
	inventory := store.NewInventory()
	cart := store.NewCart()
	ledger := store.NewTransactionLog()
	users := store.NewCredentialStore()

	if cfg.BootstrapAdminUser != "" && cfg.BootstrapAdminPassword != "" {
		if err := users.Register(cfg.BootstrapAdminUser, cfg.BootstrapAdminPassword, model.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("failed to register bootstrap admin")
		}
		log.Info().Str("username", cfg.BootstrapAdminUser).Msg("bootstrap admin registered")
	}

	// ── Async receipt pipeline ───────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	handlers := &worker.Handlers{
		Receipt: worker.NewReceiptWorker(mailer, rdb, cfg.PDFStoragePath),
	}
	worker.StartPool(ctx, rdb, handlers, cfg.WorkerPoolSize)

	// ── Services ─────────────────────────────────────────────────────────────
	posSvc := service.NewPOSService(inventory, cart, ledger, persistSt, dispatcher)
	authSvc := service.NewAuthService(users, cfg)

	if err := posSvc.LoadInventory(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load inventory")
	}

	r := router.New(cfg, posSvc, authSvc, persistSt, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("SleekSell POS listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// Final snapshot save so a restart starts from the latest stock counts.
	if err := posSvc.SaveInventory(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("final inventory save failed")
	}
	log.Info().Msg("server exited")
}
