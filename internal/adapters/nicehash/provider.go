package nicehash

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/alejandrodnm/gpuroi/internal/currency"
	"github.com/alejandrodnm/gpuroi/internal/domain"
)

const origin = "nicehash"

// FetchRates implementa currency.RateSource con la tabla de NiceHash.
func (c *Client) FetchRates(ctx context.Context) ([]currency.Rate, error) {
	var resp ratesResponse
	if err := c.get(ctx, ratesPath, &resp); err != nil {
		return nil, fmt.Errorf("nicehash.FetchRates: %w", err)
	}

	rates := make([]currency.Rate, 0, len(resp.List))
	for _, r := range resp.List {
		rates = append(rates, currency.Rate{
			FromCurrency: r.FromCurrency,
			ToCurrency:   r.ToCurrency,
			ExchangeRate: r.ExchangeRate,
		})
	}
	return rates, nil
}

// GpuProvider implementa ports.RevenueProvider sobre el feed de dispositivos
// de NiceHash, convirtiendo el paying en BTC a BRL.
type GpuProvider struct {
	client *Client
	conv   *currency.Converter
}

// NewGpuProvider crea el provider con el client y el conversor dados.
func NewGpuProvider(client *Client, conv *currency.Converter) *GpuProvider {
	return &GpuProvider{client: client, conv: conv}
}

// FetchGpus devuelve los dispositivos de categoría GPU como Gpu canónicas.
// El resultado va ordenado por longitud de modelo descendente para que el
// match por substring contra descripciones de retail prefiera siempre el
// modelo más específico ("RTX 3060 Ti" antes que "RTX 3060").
func (p *GpuProvider) FetchGpus(ctx context.Context) ([]domain.Gpu, error) {
	var resp devicesResponse
	if err := p.client.get(ctx, devicesPath, &resp); err != nil {
		return nil, fmt.Errorf("nicehash.FetchGpus: %w", err)
	}

	gpus := make([]domain.Gpu, 0, len(resp.Devices))
	for _, d := range resp.Devices {
		if d.Category != "GPU" {
			continue
		}

		value, err := p.conv.BTCToBRL(ctx, d.Paying)
		if err != nil {
			return nil, fmt.Errorf("nicehash.FetchGpus: convert paying for %q: %w", d.Name, err)
		}

		gpus = append(gpus, domain.Gpu{
			Model:    normalizeModel(d.Name),
			Brand:    domain.DetectBrand(d.Name),
			Power:    int(d.Power),
			Revenues: []domain.Revenue{{Origin: origin, Value: value}},
		})
	}

	sort.SliceStable(gpus, func(i, j int) bool {
		return len(gpus[i].Model) > len(gpus[j].Model)
	})

	slog.Debug("nicehash gpus fetched", "devices", len(resp.Devices), "gpus", len(gpus))
	return gpus, nil
}

// normalizeModel quita el prefijo de marca con el que NiceHash nombra los
// dispositivos ("NVIDIA GeForce..." → "GeForce...").
func normalizeModel(name string) string {
	for _, prefix := range []string{"AMD ", "NVIDIA "} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
