// Package main is the entry point for the travel planner API service.
//
//	@title						Travel Planner API
//	@version					1.0.0
//	@description				Validates trip preferences and searches the web for attractions and hotels at a destination.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/travel-planner/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-planner/travel-planner/docs"

	// Application layers
	triphttp "github.com/trip-planner/travel-planner/internal/adapter/http"
	"github.com/trip-planner/travel-planner/internal/adapter/http/middleware"
	"github.com/trip-planner/travel-planner/internal/adapter/provider/tavily"
	"github.com/trip-planner/travel-planner/internal/config"
	"github.com/trip-planner/travel-planner/internal/infrastructure/logger"
	"github.com/trip-planner/travel-planner/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodySize     = "1M"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(cfg.LoggerConfig())
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Dur("search_timeout", cfg.Search.Timeout).
		Msg("Configuration loaded")

	handler, err := buildHandler(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize search client")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	triphttp.RegisterRoutesWithMiddleware(e, handler, echomw.BodyLimit(maxBodySize))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildHandler wires the Tavily client, the search use cases and the HTTP handler.
func buildHandler(cfg *config.Config, log *logger.Logger) (*triphttp.TripHandler, error) {
	client, err := tavily.NewAdapter(cfg.Search.TavilyAPIKey,
		tavily.WithBaseURL(cfg.Search.TavilyBaseURL),
		tavily.WithTimeout(cfg.Search.Timeout),
		tavily.WithLogger(log.WithProvider(tavily.ProviderName).Logger),
	)
	if err != nil {
		return nil, err
	}

	attractions := usecase.NewAttractionSearchUseCase(client,
		usecase.WithLogger(log.WithSearch("attractions").Logger))
	hotels := usecase.NewHotelSearchUseCase(client,
		usecase.WithLogger(log.WithSearch("hotels").Logger))

	return triphttp.NewTripHandler(attractions, hotels, &triphttp.HandlerConfig{
		MaxAttractions: cfg.Search.MaxAttractions,
		MaxHotels:      cfg.Search.MaxHotels,
		Logger:         log.Logger,
	}), nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
