package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/catalog"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/config"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/endpoints"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/service"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/transport"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/logger"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/airport"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/expedia"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/geocoding"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/qpx"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/trip"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title           Event Trip Search Service API
// @version         0.0.1
// @description     event-trip-search-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cancel, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cancel context.CancelFunc, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	searchService := makeSearchService(ctx, &cfg, redisClient)
	endpts := endpoints.Endpoints{
		SearchEndpoint: endpoints.MakeSearchEndpoint(searchService),
	}

	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	if err := searchService.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to stop running searches", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeSearchService(ctx context.Context, cfg *config.Config, redisClient *redis.Client) *service.SearchService {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// remote services
	searchRemote := initRemote(cfg, redisClient)

	// cache
	snapshotCache := trip.NewSnapshotCache(redisClient)

	return service.NewSearchService(ctx, searchRemote, catalog.Default(), snapshotCache,
		cfg.Search.SnapshotExpiration, cfg.Search.MaxEvents)
}

// register the remote services a search talks to
func initRemote(cfg *config.Config, redisClient *redis.Client) trip.Remote {
	limiter := redis_rate.NewLimiter(redisClient)

	return trip.Remote{
		Geocoder: geocoding.NewClient(remote.Config{
			BaseURL:      cfg.Remote.Geocoding.URL,
			APIKey:       cfg.Remote.Geocoding.Key,
			Timeout:      cfg.Remote.Geocoding.Timeout,
			RateLimitRPS: cfg.Remote.Geocoding.RateLimitRPS,
			Limiter:      limiter,
		}),
		Airports: airport.NewClient(remote.Config{
			BaseURL:      cfg.Remote.Airport.URL,
			APIKey:       cfg.Remote.Airport.Key,
			Timeout:      cfg.Remote.Airport.Timeout,
			RateLimitRPS: cfg.Remote.Airport.RateLimitRPS,
			Limiter:      limiter,
		}),
		Flights: qpx.NewClient(remote.Config{
			BaseURL:      cfg.Remote.Flight.URL,
			APIKey:       cfg.Remote.Flight.Key,
			Timeout:      cfg.Remote.Flight.Timeout,
			RateLimitRPS: cfg.Remote.Flight.RateLimitRPS,
			Limiter:      limiter,
		}),
		Hotels: expedia.NewClient(remote.Config{
			BaseURL:      cfg.Remote.Hotel.URL,
			APIKey:       cfg.Remote.Hotel.Key,
			Timeout:      cfg.Remote.Hotel.Timeout,
			RateLimitRPS: cfg.Remote.Hotel.RateLimitRPS,
			Limiter:      limiter,
		}),
	}
}
