package whattomine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alejandrodnm/gpuroi/internal/currency"
	"github.com/alejandrodnm/gpuroi/internal/domain"
)

const origin = "whattomine"

// GpuProvider implementa ports.RevenueProvider sobre el feed de WhatToMine,
// convirtiendo el revenue en USD a BRL.
type GpuProvider struct {
	client *Client
	conv   *currency.Converter
}

// NewGpuProvider crea el provider con el client y el conversor dados.
func NewGpuProvider(client *Client, conv *currency.Converter) *GpuProvider {
	return &GpuProvider{client: client, conv: conv}
}

// FetchGpus devuelve las filas del feed como Gpu canónicas.
func (p *GpuProvider) FetchGpus(ctx context.Context) ([]domain.Gpu, error) {
	rows, err := p.client.fetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("whattomine.FetchGpus: %w", err)
	}

	gpus := make([]domain.Gpu, 0, len(rows))
	for _, row := range rows {
		usd, err := parseRevenueUSD(row.Revenue)
		if err != nil {
			slog.Debug("unparseable revenue, skipping row",
				"name", row.Name,
				"revenue", row.Revenue,
			)
			continue
		}

		value, err := p.conv.USDToBRL(ctx, usd)
		if err != nil {
			return nil, fmt.Errorf("whattomine.FetchGpus: convert revenue for %q: %w", row.Name, err)
		}

		gpus = append(gpus, domain.Gpu{
			Model:    normalizeModel(row.Name),
			Brand:    domain.DetectBrand(row.Name),
			Power:    row.Power,
			Revenues: []domain.Revenue{{Origin: origin, Value: value}},
		})
	}

	slog.Debug("whattomine gpus fetched", "rows", len(rows), "gpus", len(gpus))
	return gpus, nil
}

// normalizeModel quita el prefijo de marca pegado al nombre. A diferencia de
// NiceHash, este feed no pone espacio después del prefijo.
func normalizeModel(name string) string {
	name = strings.ReplaceAll(name, "\n", "")
	for _, prefix := range []string{"AMD", "NVIDIA"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(name, prefix))
		}
	}
	return strings.TrimSpace(name)
}

// parseRevenueUSD parsea el ingreso diario quitando el símbolo de dólar.
func parseRevenueUSD(raw string) (float64, error) {
	s := strings.TrimSpace(strings.Replace(raw, "$", "", 1))
	return strconv.ParseFloat(s, 64)
}
