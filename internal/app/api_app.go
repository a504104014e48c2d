package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres_adapter "sdg-content-service/internal/adapters/postgres"
	"sdg-content-service/internal/adapters/rest"
	"sdg-content-service/internal/configs"
	"sdg-content-service/internal/core/port"
	"sdg-content-service/internal/core/usecase"
)

// APIApp is the composition root of the REST API binary.
type APIApp struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
	server       *rest.Server
}

// NewAPIApp wires the query side: PostgreSQL adapters -> use cases -> chi
// handlers.
func NewAPIApp() (*APIApp, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := buildLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	dbPool, err := postgres_adapter.NewClient(context.Background(), postgres_adapter.Config{
		DatabaseURL: appConfig.Database.URL,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	queryAdapter, err := postgres_adapter.NewBusinessQueryAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize query adapter: %w", err)
	}
	bookmarkRepo, err := postgres_adapter.NewBookmarkRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize bookmark repository: %w", err)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	businessHandler := rest.NewBusinessHandler(
		usecase.NewFindBusinessesUseCase(queryAdapter),
		usecase.NewGetBusinessDetailsUseCase(queryAdapter),
		usecase.NewSearchBusinessesUseCase(queryAdapter),
		usecase.NewGetCatalogStatsUseCase(queryAdapter),
	)
	bookmarkHandler := rest.NewBookmarkHandler(
		usecase.NewToggleBookmarkUseCase(bookmarkRepo),
		usecase.NewGetBookmarkedUseCase(bookmarkRepo),
	)
	appLogger.Info("All use cases initialized.", nil)

	server := rest.NewServer(
		appConfig.HTTP.Port,
		appConfig.HTTP.AllowedOrigins,
		businessHandler,
		bookmarkHandler,
		baseLogger,
	)

	return &APIApp{
		config:       appConfig,
		dbPool:       dbPool,
		fluentClient: fluentClient,
		logger:       baseLogger,
		server:       server,
	}, nil
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (a *APIApp) Run() error {
	defer func() {
		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}
		a.logger.Info("Application shut down gracefully.", nil)
		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				log.Printf("App: Error closing fluent client: %v\n", err)
			}
		}
	}()

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received signal, shutting down", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed, shutting down", err, nil)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during server shutdown", err, nil)
		return err
	}
	return nil
}
