package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	v1 "ruralconnect/cmd/api/router/v1"
	"ruralconnect/internal/config"
	"ruralconnect/internal/infrastructure/auth"
	cacheAdapter "ruralconnect/internal/infrastructure/cache/adapter"
	cacheport "ruralconnect/internal/infrastructure/cache/port"
	"ruralconnect/internal/infrastructure/database"
	"ruralconnect/internal/infrastructure/mail"
	queueAdapter "ruralconnect/internal/infrastructure/queue/adapter"
	qport "ruralconnect/internal/infrastructure/queue/port"
	"ruralconnect/internal/infrastructure/realtime"
	"ruralconnect/internal/pkg/conversation/application/task"
)

func main() {
	cfg := config.Load()

	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DBUrl)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()
	logger.Info().Msg("connected to PostgreSQL")

	// Redis backs the queue and the conversation-summary cache. Both are
	// optional; without them sends still persist and route live.
	var cache cacheport.Cache
	var queue qport.Client
	var queueSrv qport.Server
	if cfg.RedisURL != "" {
		rc, err := cacheAdapter.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rc.Close()
		cache = rc

		qc, err := queueAdapter.NewAsynqClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("queue client failed")
		}
		defer qc.Close()
		queue = qc

		qs, err := queueAdapter.NewAsynqServer(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("queue server failed")
		}
		queueSrv = qs

		mailer := mail.NewMailer(cfg, logger)
		task.RegisterNotifyOfflineTask(queueSrv, mailer)

		go func() {
			if err := queueSrv.Run(context.Background()); err != nil {
				logger.Error().Err(err).Msg("queue server stopped")
			}
		}()
		logger.Info().Msg("connected to Redis")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	registry := realtime.NewRegistry()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1.RegisterRoutes(r, pool, tokens, registry, queue, cache)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("starting API server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	if queueSrv != nil {
		_ = queueSrv.Stop(shutdownCtx)
	}
	registry.Close()

	logger.Info().Msg("server stopped")
}
