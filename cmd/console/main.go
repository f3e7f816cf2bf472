package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orbit-facilities/console/internal/api"
	"github.com/orbit-facilities/console/internal/core/ports"
	"github.com/orbit-facilities/console/internal/core/service"
	"github.com/orbit-facilities/console/internal/infrastructure/backend"
	"github.com/orbit-facilities/console/internal/infrastructure/session"
	"github.com/orbit-facilities/console/internal/pkg/config"
	"github.com/orbit-facilities/console/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Token store: Redis when configured, in-process otherwise. Without
	// Redis, sessions do not survive a console restart.
	var store ports.TokenStore
	if cfg.Redis.Addr != "" {
		rdb, err := session.Connect(ctx, session.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		store = session.NewRedisTokenStore(rdb, cfg.Session.TTL())
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis token store")
	} else {
		store = session.NewMemoryTokenStore()
		log.Warn().Msg("REDIS_ADDR not set; using in-memory token store")
	}

	sessions := service.NewSessionManager(store, cfg.Session.CookieName, cfg.Session.TTL())

	client, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), sessions)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid backend configuration")
	}

	e, err := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Auth:      backend.NewAuthService(client),
		Rooms:     backend.NewRoomService(client),
		Equipment: backend.NewEquipmentService(client),
		Log:       log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("backend", cfg.Backend.BaseURL).Msg("console listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
