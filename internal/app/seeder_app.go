package app

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"sdg-content-service/internal/adapters/artifact"
	postgres_adapter "sdg-content-service/internal/adapters/postgres"
	"sdg-content-service/internal/configs"
	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/port"
	"sdg-content-service/internal/core/usecase"
)

// SeederApp is the composition root of the seeder binary.
type SeederApp struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	seedCatalog *usecase.SeedCatalogUseCase
}

// NewSeederApp wires the bulk load pipeline: JSON artifact reader -> use
// case -> PostgreSQL storage adapter.
func NewSeederApp() (*SeederApp, error) {
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

	catalogReader, err := artifact.NewJSONCatalogReader(appConfig.Scraper.OutputPath)
	if err != nil {
		appLogger.Error("Failed to create catalog reader", err, port.Fields{"path": appConfig.Scraper.OutputPath})
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize catalog reader: %w", err)
	}

	storageAdapter, err := postgres_adapter.NewBusinessStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize storage adapter: %w", err)
	}

	seedCatalog := usecase.NewSeedCatalogUseCase(catalogReader, storageAdapter)
	appLogger.Info("Use cases initialized.", nil)

	return &SeederApp{
		config:       appConfig,
		dbPool:       dbPool,
		fluentClient: fluentClient,
		logger:       baseLogger,
		seedCatalog:  seedCatalog,
	}, nil
}

// Run performs one bulk load and exits.
func (a *SeederApp) Run() error {
	defer func() {
		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}
		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				log.Printf("App: Error closing fluent client: %v\n", err)
			}
		}
	}()

	appCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	appCtx = contextkeys.ContextWithLogger(appCtx, a.logger)

	a.logger.Info("Seed run starting...", port.Fields{"artifact": a.config.Scraper.OutputPath})

	summary, err := a.seedCatalog.Execute(appCtx)
	if err != nil {
		a.logger.Error("Seed run failed", err, nil)
		return err
	}

	a.logger.Info("Seed run finished", port.Fields{
		"total":    summary.Total,
		"inserted": summary.Inserted,
		"updated":  summary.Updated,
		"failed":   summary.Failed,
	})
	if summary.Failed > 0 {
		return fmt.Errorf("seed finished with %d failed records", summary.Failed)
	}
	return nil
}
