package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	accountclient "github.com/kauelucena/barberhub/internal/account/client"
	accounthttp "github.com/kauelucena/barberhub/internal/account/delivery/http"
	accountdomain "github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/internal/account/postal"
	accountrepo "github.com/kauelucena/barberhub/internal/account/repository"
	catalogclient "github.com/kauelucena/barberhub/internal/catalog/client"
	cataloghttp "github.com/kauelucena/barberhub/internal/catalog/delivery/http"
	cityhttp "github.com/kauelucena/barberhub/internal/city/delivery/http"
	citydomain "github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/internal/city/geocode"
	cityrepo "github.com/kauelucena/barberhub/internal/city/repository"
	"github.com/kauelucena/barberhub/internal/config"
	dirclient "github.com/kauelucena/barberhub/internal/directory/client"
	dirhttp "github.com/kauelucena/barberhub/internal/directory/delivery/http"
	favhttp "github.com/kauelucena/barberhub/internal/favorites/delivery/http"
	favdomain "github.com/kauelucena/barberhub/internal/favorites/domain"
	favrepo "github.com/kauelucena/barberhub/internal/favorites/repository"
	"github.com/kauelucena/barberhub/internal/web"
	"github.com/kauelucena/barberhub/pkg/logger"
	"github.com/kauelucena/barberhub/pkg/session"
	"github.com/kauelucena/barberhub/pkg/storage"
	"github.com/kauelucena/barberhub/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "barberhub-web")
	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("backend_url", cfg.Backend.BaseURL).
		Msg("Starting barberhub web service")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	// Session token signing
	session.Init(cfg.SessionSecret)

	// Client-side state lives in Redis; an in-memory fallback keeps the
	// app usable (without persistence across restarts) when Redis is down
	var (
		favorites favdomain.Repository
		cityPrefs citydomain.PreferenceRepository
		sessions  accountdomain.SessionRepository
	)
	redisClient, err := storage.NewRedisClient(storage.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, using in-memory state")
		favorites = favrepo.NewMemoryFavoriteRepository()
		cityPrefs = cityrepo.NewMemoryPreferenceRepository()
		sessions = accountrepo.NewMemorySessionRepository()
	} else {
		defer redisClient.Close()
		favorites = favrepo.NewRedisFavoriteRepository(redisClient)
		cityPrefs = cityrepo.NewRedisPreferenceRepository(redisClient)
		sessions = accountrepo.NewRedisSessionRepository(redisClient)
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
	}

	// Remote API clients
	directory := dirclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	services := catalogclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	accounts := accountclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	geocoder := geocode.New(cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout)
	postalLookup := postal.New(cfg.Postal.BaseURL, cfg.Postal.Timeout)

	// HTTP handlers
	directoryHandler := dirhttp.NewDirectoryHandler(directory, favorites, cityPrefs)
	cityHandler := cityhttp.NewCityHandler(cityPrefs, geocoder, directory)
	favoriteHandler := favhttp.NewFavoriteHandler(favorites)
	accountHandler := accounthttp.NewAccountHandler(accounts, sessions, postalLookup)
	serviceHandler := cataloghttp.NewServiceHandler(services, sessions)

	// Setup router
	router := mux.NewRouter()
	router.Use(web.LoggingMiddleware)

	directoryHandler.RegisterRoutes(router)
	cityHandler.RegisterRoutes(router)
	favoriteHandler.RegisterRoutes(router)
	accountHandler.RegisterRoutes(router)
	serviceHandler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Port).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
