package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/alejandrodnm/gpuroi/internal/matcher"
	"github.com/alejandrodnm/gpuroi/internal/ports"
)

// PriceProvider implementa ports.PriceProvider para una tienda: obtiene los
// listados crudos vía su Scraper y los matchea contra el catálogo con la
// configuración propia de la tienda.
type PriceProvider struct {
	scraper ports.Scraper
	cfg     matcher.Config
}

// NewKabum crea el provider de Kabum. Kabum mezcla categorías en el listado,
// así que exige el substring "placa de vídeo" en la descripción.
func NewKabum(scraper ports.Scraper) *PriceProvider {
	return &PriceProvider{
		scraper: scraper,
		cfg: matcher.Config{
			Shop:           domain.ShopKabum,
			PricePrefix:    "R$",
			RequiredSignal: "placa de vídeo",
		},
	}
}

// NewPichau crea el provider de Pichau. El precio listado es el de boleto,
// con el prefijo "à vista R$".
func NewPichau(scraper ports.Scraper) *PriceProvider {
	return &PriceProvider{
		scraper: scraper,
		cfg: matcher.Config{
			Shop:        domain.ShopPichau,
			PricePrefix: "à vista R$",
		},
	}
}

// NewTerabyte crea el provider de Terabyte.
func NewTerabyte(scraper ports.Scraper) *PriceProvider {
	return &PriceProvider{
		scraper: scraper,
		cfg: matcher.Config{
			Shop:        domain.ShopTerabyte,
			PricePrefix: "R$",
		},
	}
}

// Shop implementa ports.PriceProvider.
func (p *PriceProvider) Shop() domain.Shop {
	return p.cfg.Shop
}

// FetchPrices implementa ports.PriceProvider.
func (p *PriceProvider) FetchPrices(ctx context.Context, catalog []domain.Gpu) ([]domain.GpuPrice, error) {
	items, err := p.scraper.FetchListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("scrape.FetchPrices: %s: %w", p.cfg.Shop, err)
	}

	prices := matcher.Match(items, catalog, p.cfg)
	slog.Debug("shop listings matched",
		"shop", p.cfg.Shop,
		"listings", len(items),
		"matched", len(prices),
	)
	return prices, nil
}
