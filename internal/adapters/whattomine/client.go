package whattomine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBase = "https://whattomine.com"
	gpusPath    = "/gpus.json"
)

// Client es el HTTP client del feed de GPUs de WhatToMine.
type Client struct {
	http    *http.Client
	base    string
	limiter *rate.Limiter
}

// NewClient crea un Client. Con base vacío usa el URL de producción.
func NewClient(base string) *Client {
	if base == "" {
		base = defaultBase
	}
	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		base:    base,
		limiter: rate.NewLimiter(2, 1),
	}
}

// fetchRows obtiene las filas crudas del feed.
func (c *Client) fetchRows(ctx context.Context) ([]gpuRow, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+gpusPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whattomine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whattomine: status %d", resp.StatusCode)
	}

	var payload gpusResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("whattomine: decode response: %w", err)
	}
	return payload.Gpus, nil
}

// gpusResponse es la respuesta de GET /gpus.json.
type gpusResponse struct {
	Gpus []gpuRow `json:"gpus"`
}

// gpuRow es una fila del feed: nombre crudo con prefijo de marca, consumo en
// watts y el ingreso diario estimado en USD con el símbolo incluido ("$3.25").
type gpuRow struct {
	Name    string `json:"name"`
	Power   int    `json:"power"`
	Revenue string `json:"revenue"`
}
