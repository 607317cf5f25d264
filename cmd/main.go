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

	"github.com/Peniel-source/flight-board-service/internal/app/config"
	"github.com/Peniel-source/flight-board-service/internal/app/dto"
	"github.com/Peniel-source/flight-board-service/internal/app/endpoints"
	"github.com/Peniel-source/flight-board-service/internal/app/service"
	"github.com/Peniel-source/flight-board-service/internal/app/transport"
	"github.com/Peniel-source/flight-board-service/internal/pkg/aerodata"
	"github.com/Peniel-source/flight-board-service/internal/pkg/board"
	"github.com/Peniel-source/flight-board-service/internal/pkg/logger"
	"github.com/Peniel-source/flight-board-service/internal/pkg/usage"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Board Service API
// @version         0.0.1
// @description     flight-board-service
// @host      localhost:8080
// @BasePath  /
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
		startHTTPServer(ctx, cfg)
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

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(endpts)
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
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	return endpoints.Endpoints{
		BoardEndpoint: makeBoardEndpoint(cfg),
	}
}

func makeBoardEndpoint(cfg *config.Config) endpoints.BoardEndpoint {
	counter := usage.NewCounter(cfg.Usage.SoftLimit)

	var (
		limiter    *redis_rate.Limiter
		boardCache service.BoardCacher
	)

	// redis backs both the cache and the outgoing rate limiter; the default
	// in-process cache needs neither
	if cfg.Cache.Backend == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		limiter = redis_rate.NewLimiter(redisClient)
		boardCache = board.NewRedisCache(redisClient, cfg.Cache.TTL)
	} else {
		boardCache = board.NewMemoryCache(cfg.Cache.TTL)
	}

	client := aerodata.NewClient(aerodata.Config{
		APIKey:       cfg.AeroAPI.Key,
		APIHost:      cfg.AeroAPI.Host,
		BaseURL:      cfg.AeroAPI.BaseURL,
		Timeout:      cfg.AeroAPI.Timeout,
		BoardWindow:  cfg.Board.Window,
		SearchLimit:  cfg.Board.SearchLimit,
		RateLimitRPS: cfg.AeroAPI.RateLimitRPS,
	}, counter, limiter)

	boardService := service.NewBoardService(client, boardCache,
		cfg.Board.Window, cfg.Board.MaxFlights, cfg.Route.CruiseSpeedKmh)
	locatorService := service.NewLocatorService(boardService,
		cfg.Locator.Airports, cfg.Locator.PacingDelay, cfg.Locator.AssumedDuration)

	return endpoints.MakeBoardEndpoint(boardService, locatorService, counter)
}
