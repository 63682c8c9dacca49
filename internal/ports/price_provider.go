package ports

import (
	"context"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// PriceProvider obtiene las ofertas de una tienda ya matcheadas contra el
// catálogo. Un fallo aquí afecta solo a esta tienda: el scanner lo registra
// y sigue con las demás.
type PriceProvider interface {
	// Shop identifica la tienda, para logs y para el reporte.
	Shop() domain.Shop

	// FetchPrices scrapea la tienda y devuelve una GpuPrice por cada listado
	// que corresponde a una GPU del catálogo. Los listados sin match se
	// descartan en silencio.
	FetchPrices(ctx context.Context, catalog []domain.Gpu) ([]domain.GpuPrice, error)
}
