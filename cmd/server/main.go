// Package main is the entry point for the airline route simulator HTTP service.
//
//	@title						Airline Route Simulator API
//	@version					1.0.0
//	@description				Simulates flights over an airline route graph and reports revenue, cost and profit per flight, per route and per run.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/airline-sim/airline-route-simulator/issues
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
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/airline-sim/airline-route-simulator/docs"

	simhttp "github.com/airline-sim/airline-route-simulator/internal/adapter/http"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/http/middleware"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/flightdata"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/graphfile"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/properties"
	"github.com/airline-sim/airline-route-simulator/internal/config"
	"github.com/airline-sim/airline-route-simulator/internal/infrastructure/logger"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLog.WithComponent("http").Logger)

	setupRoutes(e, cfg, appLog)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, appLog)
}

// setupLogger builds the service logger from config and makes it the zerolog default.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  logger.ServiceName,
	})
	l.SetAsDefault()
	return l
}

// setupRoutes wires the file providers, the simulation use case and the HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, appLog *logger.Logger) {
	loaderLog := appLog.WithComponent("loader").Logger

	var propsOpts []properties.Option
	if cfg.Simulation.PropertiesFallback {
		propsOpts = append(propsOpts, properties.WithFallback())
	}

	graph := graphfile.NewAdapter(cfg.Simulation.GraphFile, loaderLog)
	data := flightdata.NewAdapter(cfg.Simulation.DataFile, loaderLog)
	settings := properties.NewAdapter(cfg.Simulation.PropertiesFile, loaderLog, propsOpts...)

	appLog.Info().
		Str("properties", settings.Name()).
		Str("graph", graph.Name()).
		Str("data", data.Name()).
		Int64("seed", cfg.Simulation.RandomSeed).
		Msg("Simulation inputs")

	sources := usecase.Sources{Graph: graph, Data: data, Settings: settings}

	simulation := usecase.NewSimulationUseCase(sources, appLog.WithComponent("simulation").Logger, &usecase.SimulationConfig{
		Seed: cfg.Simulation.RandomSeed,
	})

	handler := simhttp.NewSimulationHandler(simulation, cfg.Timeouts.Simulation)
	simhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
