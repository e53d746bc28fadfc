package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Paurakh977/HomeStay-MCP/internal/config"
	dbMongo "github.com/Paurakh977/HomeStay-MCP/internal/db/mongo"
	dbRedis "github.com/Paurakh977/HomeStay-MCP/internal/db/redis"
	logpkg "github.com/Paurakh977/HomeStay-MCP/internal/logger"
	"github.com/Paurakh977/HomeStay-MCP/internal/metrics"
	"github.com/Paurakh977/HomeStay-MCP/internal/repository/cache"
	homestayrepo "github.com/Paurakh977/HomeStay-MCP/internal/repository/homestay"
	mcpTransport "github.com/Paurakh977/HomeStay-MCP/internal/transport/mcp"
	"github.com/Paurakh977/HomeStay-MCP/internal/transport/officer"
	healthuc "github.com/Paurakh977/HomeStay-MCP/internal/usecase/health"
	searchuc "github.com/Paurakh977/HomeStay-MCP/internal/usecase/search"
	statsuc "github.com/Paurakh977/HomeStay-MCP/internal/usecase/stats"
	"github.com/Paurakh977/HomeStay-MCP/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting homestay API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("mongo_database", cfg.Mongo.Database),
		zap.Bool("cache_enabled", cfg.Cache.Enabled()),
	)

	// Document store
	store, err := dbMongo.NewStore(dbMongo.Config{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
	})
	if err != nil {
		logger.Fatal("Failed to create document store", zap.Error(err))
	}

	ctx := context.Background()
	defer func() {
		if err := store.Close(ctx); err != nil {
			logger.Error("Error closing document store", zap.Error(err))
		}
	}()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Mongo.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Document store not ready", zap.Error(err))
	}
	logger.Info("Connected to document store")

	// Optional Redis cache for collection-wide aggregates
	var cacheStore *dbRedis.Store
	if cfg.Cache.Enabled() {
		cacheStore, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer cacheStore.Close()

		if err := cacheStore.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache")
	}

	// Repositories — composition root
	repo := homestayrepo.New(store.Collection())

	var searchRepo searchuc.Repository = repo
	var statsRepo statsuc.Repository = repo
	if cacheStore != nil {
		cached := cache.New(cacheStore.Client(), cfg.Cache.KeyPrefix, time.Duration(cfg.Cache.TTLSec)*time.Second)
		searchRepo = cache.NewSearchRepository(repo, cached)
		statsRepo = cache.NewStats(repo, cached)
	}

	// Use case services
	queryTimeout := time.Duration(cfg.Search.QueryTimeoutSec) * time.Second
	searchSvc := searchuc.New(searchRepo, metrics.Engine{}, cfg.Search.Schema, searchuc.Options{
		FuzzyThreshold: cfg.Search.FuzzyThreshold,
		DefaultStatus:  cfg.Search.DefaultStatus,
		DefaultLimit:   cfg.Search.DefaultLimit,
		MaxLimit:       cfg.Search.MaxLimit,
		QueryTimeout:   queryTimeout,
		HighWater:      cfg.Search.HighWater,
	})
	statsSvc := statsuc.New(statsRepo, queryTimeout)

	// Pass nil interface (not typed nil pointer!) when a collaborator is not
	// configured. Go gotcha: (*T)(nil) wrapped in an interface != nil.
	var officers mcpTransport.OfficerAPI
	if cfg.Officer.BaseURL != "" {
		officers = officer.NewClient(cfg.Officer.BaseURL, time.Duration(cfg.Officer.TimeoutSec)*time.Second)
		logger.Info("Officer API proxy enabled", zap.String("base_url", cfg.Officer.BaseURL))
	}

	var cachePinger healthuc.CachePinger
	if cacheStore != nil {
		cachePinger = cacheStore
	}
	healthSvc := healthuc.New(store, cachePinger)

	// MCP tool server
	mcpSrv := mcpTransport.NewServer(searchSvc, statsSvc, officers, cfg.Officer.AuthToken, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())

	r.Get("/healthz", healthHandler(healthSvc))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/mcp", mcpSrv.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// healthHandler renders the component health report as JSON.
func healthHandler(svc *healthuc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := svc.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if report.Status != healthuc.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": report.Status,
			"checks": report.Checks,
		})
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
