package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sdg-content-service/internal/contextkeys"
	"sdg-content-service/internal/contracts"
	"sdg-content-service/internal/core/domain"
	"sdg-content-service/internal/core/port"
)

// JSONCatalogWriter writes the catalog artifact to a local file. The write is
// the last step of a run; an aborted run leaves any previous artifact intact.
type JSONCatalogWriter struct {
	path string
}

func NewJSONCatalogWriter(path string) (*JSONCatalogWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog writer: output path is required")
	}
	return &JSONCatalogWriter{path: path}, nil
}

func (w *JSONCatalogWriter) Write(ctx context.Context, catalog domain.Catalog) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "JSONCatalogWriter",
	})

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("catalog writer: failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog writer: failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("catalog writer: failed to write %s: %w", w.path, err)
	}

	logger.Info("Catalog artifact written", port.Fields{
		"path":  w.path,
		"total": catalog.Total,
		"bytes": len(data),
	})
	return nil
}

// JSONCatalogReader loads and validates a catalog artifact.
type JSONCatalogReader struct {
	path string
}

func NewJSONCatalogReader(path string) (*JSONCatalogReader, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog reader: input path is required")
	}
	return &JSONCatalogReader{path: path}, nil
}

// Read loads the artifact, validates it against the feed contract and
// unmarshals it. A document failing validation never reaches the store.
func (r *JSONCatalogReader) Read(ctx context.Context) (*domain.Catalog, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("catalog reader: failed to read %s: %w", r.path, err)
	}

	if err := contracts.ValidateBusinessFeed(raw); err != nil {
		return nil, fmt.Errorf("catalog reader: %s does not conform to the feed contract: %w", r.path, err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("catalog reader: failed to unmarshal %s: %w", r.path, err)
	}
	return &catalog, nil
}
