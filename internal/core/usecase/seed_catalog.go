package usecase

import (
	"context"
	"fmt"

	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// SeedCatalogUseCase bulk-loads a scraped catalog artifact into the
// relational store. The artifact may legitimately carry two records with the
// same id (ad + organic variant); the store upserts by id, so the later one
// wins. Documented behavior, not a bug.
type SeedCatalogUseCase struct {
	reader  port.CatalogReaderPort
	storage port.BusinessStoragePort
}

func NewSeedCatalogUseCase(reader port.CatalogReaderPort, storage port.BusinessStoragePort) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		reader:  reader,
		storage: storage,
	}
}

func (uc *SeedCatalogUseCase) Execute(ctx context.Context) (*domain.SeedSummary, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SeedCatalog",
	})

	catalog, err := uc.reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("Catalog artifact loaded", port.Fields{
		"total":      catalog.Total,
		"scraped_at": catalog.ScrapedAt,
	})

	if err := uc.storage.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("seed catalog: failed to ensure schema: %w", err)
	}

	summary := &domain.SeedSummary{Total: len(catalog.Businesses)}
	for _, business := range catalog.Businesses {
		inserted, err := uc.storage.Upsert(ctx, business)
		if err != nil {
			logger.Error("Failed to upsert business, skipping", err, port.Fields{
				"business_id": business.ID,
				"name":        business.Name,
			})
			summary.Failed++
			continue
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}

	logger.Info("Seeding finished", port.Fields{
		"total":    summary.Total,
		"inserted": summary.Inserted,
		"updated":  summary.Updated,
		"failed":   summary.Failed,
	})
	return summary, nil
}
