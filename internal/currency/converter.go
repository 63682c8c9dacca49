// Package currency convierte montos entre BTC, USD y BRL usando la tabla de
// tasas de cambio de NiceHash, con aritmética decimal exacta.
package currency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrPairNotFound indica que la tabla de tasas no contiene el par pedido.
// Es fatal: no existe una tasa de fallback sensata.
var ErrPairNotFound = errors.New("currency: conversion pair not found")

// Rate es una entrada de la tabla de tasas de cambio tal como llega del
// proveedor. ExchangeRate viene como string para no perder precisión.
type Rate struct {
	FromCurrency string
	ToCurrency   string
	ExchangeRate string
}

// RateSource obtiene la tabla completa de tasas de cambio.
type RateSource interface {
	FetchRates(ctx context.Context) ([]Rate, error)
}

// Converter responde conversiones BTC→USD, USD→BRL y BTC→BRL.
// La tabla se obtiene una sola vez por proceso y se memoiza; no hay TTL
// porque el proceso es de una sola pasada. No es un singleton: se construye
// una vez y se pasa por referencia a quien lo necesite.
type Converter struct {
	source RateSource

	mu     sync.Mutex
	loaded bool
	rates  []Rate
}

// NewConverter crea un Converter sobre la fuente de tasas dada.
func NewConverter(source RateSource) *Converter {
	return &Converter{source: source}
}

// Convert convierte amount entre las monedas dadas, a 2 decimales.
// BTC→BRL se compone encadenando BTC→USD y USD→BRL.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	switch {
	case from == "BTC" && to == "USD":
		return c.BTCToUSD(ctx, amount)
	case from == "USD" && to == "BRL":
		return c.USDToBRL(ctx, amount)
	case from == "BTC" && to == "BRL":
		return c.BTCToBRL(ctx, amount)
	}
	return c.applyRate(ctx, amount, from, to)
}

// BTCToUSD convierte un monto en BTC a USD. Un monto NaN se trata como 0,
// porque el feed de dispositivos a veces omite el paying.
func (c *Converter) BTCToUSD(ctx context.Context, amount float64) (float64, error) {
	if math.IsNaN(amount) {
		amount = 0
	}
	return c.applyRate(ctx, amount, "BTC", "USD")
}

// USDToBRL convierte un monto en USD a BRL.
func (c *Converter) USDToBRL(ctx context.Context, amount float64) (float64, error) {
	return c.applyRate(ctx, amount, "USD", "BRL")
}

// BTCToBRL encadena BTC→USD y USD→BRL. El intermedio en USD ya viene
// redondeado a 2 decimales, igual que las conversiones directas.
func (c *Converter) BTCToBRL(ctx context.Context, amount float64) (float64, error) {
	usd, err := c.BTCToUSD(ctx, amount)
	if err != nil {
		return 0, err
	}
	return c.USDToBRL(ctx, usd)
}

// applyRate busca la tasa del par y la aplica con precisión decimal.
func (c *Converter) applyRate(ctx context.Context, amount float64, from, to string) (float64, error) {
	rates, err := c.conversions(ctx)
	if err != nil {
		return 0, err
	}

	for _, r := range rates {
		if r.FromCurrency != from || r.ToCurrency != to {
			continue
		}
		rate, err := decimal.NewFromString(r.ExchangeRate)
		if err != nil {
			return 0, fmt.Errorf("currency.Convert: bad rate %q for %s→%s: %w", r.ExchangeRate, from, to, err)
		}
		return decimal.NewFromFloat(amount).Mul(rate).Round(2).InexactFloat64(), nil
	}

	return 0, fmt.Errorf("currency.Convert: %s→%s: %w", from, to, ErrPairNotFound)
}

// conversions devuelve la tabla memoizada, haciendo el fetch la primera vez.
// El mutex serializa el primer fetch; las llamadas siguientes leen la cache.
func (c *Converter) conversions(ctx context.Context) ([]Rate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.rates, nil
	}

	rates, err := c.source.FetchRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("currency: fetch exchange rates: %w", err)
	}

	c.rates = rates
	c.loaded = true
	slog.Debug("exchange rate table loaded", "pairs", len(rates))
	return c.rates, nil
}
