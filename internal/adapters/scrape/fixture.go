package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// FixtureScraper lee los listados desde un archivo JSON local con el mismo
// shape que el gateway. Se usa en modo dry-run y en tests.
type FixtureScraper struct {
	path string
}

// NewFixtureScraper crea un Scraper que lee del archivo dado.
func NewFixtureScraper(path string) *FixtureScraper {
	return &FixtureScraper{path: path}
}

// FetchListings implementa ports.Scraper.
func (f *FixtureScraper) FetchListings(_ context.Context) ([]domain.Listing, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("scrape fixture: read %q: %w", f.path, err)
	}

	var payload listingsResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("scrape fixture: parse %q: %w", f.path, err)
	}

	items := make([]domain.Listing, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, domain.Listing{
			Description: it.Description,
			PriceText:   it.Price,
			Link:        it.Link,
		})
	}
	return items, nil
}
