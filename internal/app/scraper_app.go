package app

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	"sdg-content-service/internal/adapters/artifact"
	"sdg-content-service/internal/adapters/sdgfetcher"
	"sdg-content-service/internal/configs"
	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/port"
	"sdg-content-service/internal/core/usecase"
)

// ScraperApp is the composition root of the scraper binary.
type ScraperApp struct {
	config       *configs.AppConfig
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	scrapeCatalog *usecase.ScrapeCatalogUseCase
}

// NewScraperApp wires the scrape pipeline: fetcher adapter -> use case ->
// JSON artifact writer.
func NewScraperApp() (*ScraperApp, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := buildLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	fetcherAdapter, err := sdgfetcher.NewSDGFetcherAdapter(appConfig.Scraper.BaseURL, appConfig.Scraper.Delay)
	if err != nil {
		appLogger.Error("Failed to create fetcher adapter", err, port.Fields{"base_url": appConfig.Scraper.BaseURL})
		return nil, fmt.Errorf("failed to initialize fetcher: %w", err)
	}
	appLogger.Info("Fetcher adapter initialized.", port.Fields{
		"base_url": appConfig.Scraper.BaseURL,
		"delay":    appConfig.Scraper.Delay.String(),
	})

	catalogWriter, err := artifact.NewJSONCatalogWriter(appConfig.Scraper.OutputPath)
	if err != nil {
		appLogger.Error("Failed to create catalog writer", err, port.Fields{"path": appConfig.Scraper.OutputPath})
		return nil, fmt.Errorf("failed to initialize catalog writer: %w", err)
	}

	scrapeCatalog := usecase.NewScrapeCatalogUseCase(fetcherAdapter, catalogWriter)
	appLogger.Info("Use cases initialized.", nil)

	return &ScraperApp{
		config:        appConfig,
		fluentClient:  fluentClient,
		logger:        baseLogger,
		scrapeCatalog: scrapeCatalog,
	}, nil
}

// Run performs one scrape run and exits. SIGINT/SIGTERM cancel the run.
func (a *ScraperApp) Run() error {
	defer func() {
		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				log.Printf("App: Error closing fluent client: %v\n", err)
			}
		}
	}()

	appCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	appCtx = contextkeys.ContextWithLogger(appCtx, a.logger)

	a.logger.Info("Scrape run starting...", nil)

	summary, err := a.scrapeCatalog.Execute(appCtx)
	if err != nil {
		a.logger.Error("Scrape run failed", err, nil)
		return err
	}

	a.logger.Info("Scrape run finished", port.Fields{
		"total":        summary.Total,
		"with_images":  summary.WithImages,
		"with_names":   summary.WithNames,
		"with_address": summary.WithAddress,
		"with_phone":   summary.WithPhone,
		"output":       a.config.Scraper.OutputPath,
	})
	return nil
}
