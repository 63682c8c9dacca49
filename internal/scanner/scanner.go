// Package scanner orquesta la corrida completa: oráculos → catálogo →
// tiendas → ranking → reportes. Es un proceso de una sola pasada.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/alejandrodnm/gpuroi/internal/catalog"
	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/alejandrodnm/gpuroi/internal/ports"
	"github.com/google/uuid"
)

// Scanner conecta los puertos: dos oráculos de ingresos, N tiendas y los
// report writers.
type Scanner struct {
	primary   ports.RevenueProvider // autoritativo en el merge del catálogo
	secondary ports.RevenueProvider
	shops     []ports.PriceProvider
	reports   []ports.ReportWriter
	model     domain.CostModel
}

// New crea un Scanner con todas las dependencias inyectadas.
func New(
	primary, secondary ports.RevenueProvider,
	shops []ports.PriceProvider,
	model domain.CostModel,
	reports ...ports.ReportWriter,
) *Scanner {
	return &Scanner{
		primary:   primary,
		secondary: secondary,
		shops:     shops,
		reports:   reports,
		model:     model,
	}
}

// Run ejecuta una corrida completa. Un fallo de oráculo o de conversión de
// moneda aborta la corrida; un fallo de tienda solo deja a esa tienda fuera
// del reporte.
func (s *Scanner) Run(ctx context.Context) error {
	runID := uuid.New().String()
	start := time.Now()
	slog.Info("scan starting", "run_id", runID, "shops", len(s.shops))

	gpus, err := s.buildCatalog(ctx)
	if err != nil {
		return fmt.Errorf("scanner.Run: %w", err)
	}
	slog.Info("catalog ready", "run_id", runID, "gpus", len(gpus))

	prices := s.fetchPrices(ctx, gpus)
	ranked := rankByPayback(prices, s.model)

	for _, r := range s.reports {
		if err := r.Write(ctx, ranked); err != nil {
			slog.Warn("report writer error", "run_id", runID, "err", err)
		}
	}

	slog.Info("scan complete",
		"run_id", runID,
		"offers", len(ranked),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// buildCatalog consulta los dos oráculos en paralelo y mezcla los resultados.
// Ambos fetches deben completar antes del merge; cualquier error es fatal
// porque el catálogo quedaría cojo.
func (s *Scanner) buildCatalog(ctx context.Context) ([]domain.Gpu, error) {
	type result struct {
		gpus []domain.Gpu
		err  error
	}

	primaryCh := make(chan result, 1)
	secondaryCh := make(chan result, 1)

	go func() {
		gpus, err := s.primary.FetchGpus(ctx)
		primaryCh <- result{gpus, err}
	}()
	go func() {
		gpus, err := s.secondary.FetchGpus(ctx)
		secondaryCh <- result{gpus, err}
	}()

	primary := <-primaryCh
	secondary := <-secondaryCh

	if primary.err != nil {
		return nil, fmt.Errorf("primary oracle: %w", primary.err)
	}
	if secondary.err != nil {
		return nil, fmt.Errorf("secondary oracle: %w", secondary.err)
	}

	return catalog.Build(primary.gpus, secondary.gpus), nil
}

// fetchPrices consulta las tiendas en paralelo contra el catálogo ya
// congelado. Los fallos se registran y la tienda contribuye cero ofertas;
// la concatenación sigue el orden configurado de tiendas para que la salida
// sea determinista.
func (s *Scanner) fetchPrices(ctx context.Context, gpus []domain.Gpu) []domain.GpuPrice {
	results := make([][]domain.GpuPrice, len(s.shops))

	var wg sync.WaitGroup
	for i, shop := range s.shops {
		wg.Add(1)
		go func(i int, shop ports.PriceProvider) {
			defer wg.Done()
			prices, err := shop.FetchPrices(ctx, gpus)
			if err != nil {
				slog.Warn("shop source failed, continuing without it",
					"shop", shop.Shop(),
					"err", err,
				)
				return
			}
			results[i] = prices
		}(i, shop)
	}
	wg.Wait()

	var all []domain.GpuPrice
	for _, prices := range results {
		all = append(all, prices...)
	}
	return all
}

// rankByPayback ordena por payback ascendente con sort estable: empates
// conservan el orden de llegada por tienda. Las entradas no rentables tienen
// payback negativo y quedan al principio, igual que en el formato histórico.
func rankByPayback(prices []domain.GpuPrice, model domain.CostModel) []domain.GpuPrice {
	sort.SliceStable(prices, func(i, j int) bool {
		return model.Payback(prices[i].Gpu, prices[i].Price) <
			model.Payback(prices[j].Gpu, prices[j].Price)
	})
	return prices
}
