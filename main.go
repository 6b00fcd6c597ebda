package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/controllers/healthz"
	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/notify"
	"github.com/fintrack/backend/internal/preferences"
	"github.com/fintrack/backend/internal/router"
	"github.com/fintrack/backend/internal/snapshot"
	"github.com/fintrack/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate swag init --parseDependency --output ./api

//	@title						FinTrack
//	@version					1.0
//	@description				The backend for FinTrack, a personal finance tracker with accounts, credit cards, budgets and fixed expenses.
//	@BasePath					/
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
//	@description				Session token as "Bearer <token>", returned by sign-up and sign-in
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Create the data directory for the sqlite file
	if cfg.DBDriver == models.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	db, err := models.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	health := healthz.Controller{DB: db, Dependencies: map[string]healthz.Pinger{}}

	revocations, closeRevocations := revocationStore(cfg)
	defer closeRevocations()
	if pinger, ok := revocations.(healthz.Pinger); ok {
		health.Dependencies["redis"] = pinger
	}

	s := store.New(db)
	snapshots := snapshot.NewRegistry(s)

	authService := auth.NewService(db, auth.Config{Secret: cfg.JWTSecret, TokenTTL: cfg.JWTTTL}, revocations)
	authService.OnSessionChange(func(event auth.Event, session auth.Session) {
		if event == auth.SignedOut {
			snapshots.Forget(session.UserID)
		}
	})

	co := v1.Controller{
		Store:         s,
		Auth:          authService,
		Notifications: notify.NewCenter(cfg.ToastTTL),
		Snapshots:     snapshots,
		Preferences:   preferences.New(db),
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()
	router.AttachRoutes(co, health, r.Group("/"), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("backend startup complete")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// revocationStore returns the redis store if REDIS_ADDR is set and the
// in-memory store otherwise.
func revocationStore(cfg config.Config) (auth.Revocations, func()) {
	if cfg.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is not set, signed out sessions are forgotten on restart")
		return auth.NewMemoryRevocations(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisRevocations, err := auth.NewRedisRevocations(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to redis")
	}

	return redisRevocations, func() { _ = redisRevocations.Close() }
}
