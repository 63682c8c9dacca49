package ports

import (
	"context"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// Scraper devuelve los productos listados en una tienda como texto crudo.
// La navegación y los selectores por sitio viven detrás de esta interfaz;
// el core solo normaliza lo que llega.
type Scraper interface {
	FetchListings(ctx context.Context) ([]domain.Listing, error)
}
