package artifact

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sdg-content-service/internal/core/domain"
)

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "businesses.json")

	catalog := domain.Catalog{
		Businesses: []domain.Business{
			{
				ID:          101,
				Name:        "Golden Gate Bakery",
				Section:     "shop",
				Address:     "1029 Grant Ave, San Francisco, CA 94133",
				City:        "San Francisco",
				State:       "CA",
				Zip:         "94133",
				GalleryURLs: []string{"https://shopdineguide.com/images/poster/101.jpg"},
				Categories:  []string{},
				LikeCount:   42,
				FetchedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:          101,
				Name:        "Golden Gate Bakery (Promoted)",
				Section:     "shop",
				GalleryURLs: []string{},
				Categories:  []string{},
				IsAd:        true,
				FetchedAt:   time.Date(2026, 8, 1, 12, 0, 1, 0, time.UTC),
			},
		},
		ScrapedAt: time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
		Total:     2,
	}

	writer, err := NewJSONCatalogWriter(path)
	if err != nil {
		t.Fatalf("NewJSONCatalogWriter: %v", err)
	}
	if err := writer.Write(context.Background(), catalog); err != nil {
		t.Fatalf("Write: %v", err)
	}

	reader, err := NewJSONCatalogReader(path)
	if err != nil {
		t.Fatalf("NewJSONCatalogReader: %v", err)
	}
	got, err := reader.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Total != 2 || len(got.Businesses) != 2 {
		t.Fatalf("got %d/%d businesses, want 2/2", got.Total, len(got.Businesses))
	}
	if !got.ScrapedAt.Equal(catalog.ScrapedAt) {
		t.Errorf("ScrapedAt = %v, want %v", got.ScrapedAt, catalog.ScrapedAt)
	}
	if got.Businesses[0].Name != "Golden Gate Bakery" || got.Businesses[1].IsAd != true {
		t.Errorf("businesses round-tripped wrong: %+v", got.Businesses)
	}
	if got.Businesses[1].GalleryURLs == nil {
		t.Error("empty gallery must survive as an empty array, not null")
	}
}

func TestReaderRejectsMissingFile(t *testing.T) {
	reader, err := NewJSONCatalogReader(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("NewJSONCatalogReader: %v", err)
	}
	if _, err := reader.Read(context.Background()); err == nil {
		t.Fatal("Read = nil error for a missing file")
	}
}

func TestReaderRejectsInvalidFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	writer, err := NewJSONCatalogWriter(path)
	if err != nil {
		t.Fatalf("NewJSONCatalogWriter: %v", err)
	}
	// A business without its required fields fails contract validation.
	catalog := domain.Catalog{
		Businesses: []domain.Business{{ID: 1, Section: "shop"}},
		ScrapedAt:  time.Now().UTC(),
		Total:      1,
	}
	if err := writer.Write(context.Background(), catalog); err != nil {
		t.Fatalf("Write: %v", err)
	}

	reader, err := NewJSONCatalogReader(path)
	if err != nil {
		t.Fatalf("NewJSONCatalogReader: %v", err)
	}
	if _, err := reader.Read(context.Background()); err == nil {
		t.Fatal("Read accepted a feed violating the contract")
	}
}

func TestWriterAndReaderRequirePath(t *testing.T) {
	if _, err := NewJSONCatalogWriter(""); err == nil {
		t.Error("writer accepted empty path")
	}
	if _, err := NewJSONCatalogReader(""); err == nil {
		t.Error("reader accepted empty path")
	}
}
