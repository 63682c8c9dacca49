// Package scrape habla con el gateway de scraping: un sidecar que hace la
// navegación con browser headless y expone los listados de cada tienda como
// JSON crudo. Los selectores por sitio viven en el gateway, no aquí.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alejandrodnm/gpuroi/internal/domain"
	"golang.org/x/time/rate"
)

const defaultBase = "http://localhost:8089"

// Client es el HTTP client del gateway de scraping.
type Client struct {
	http    *http.Client
	base    string
	limiter *rate.Limiter
}

// NewClient crea un Client. Con base vacío usa el sidecar local.
func NewClient(base string) *Client {
	if base == "" {
		base = defaultBase
	}
	return &Client{
		// El gateway navega con browser real: darle margen de sobra.
		http:    &http.Client{Timeout: 60 * time.Second},
		base:    base,
		limiter: rate.NewLimiter(1, 3),
	}
}

// Listings obtiene los productos listados de una tienda.
func (c *Client) Listings(ctx context.Context, shop domain.Shop) ([]domain.Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/listings/%s", c.base, shop)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape gateway %s: %w", shop, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrape gateway %s: status %d", shop, resp.StatusCode)
	}

	var payload listingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("scrape gateway %s: decode response: %w", shop, err)
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

// listingsResponse es la respuesta de GET /api/v1/listings/{shop}.
type listingsResponse struct {
	Items []listingItem `json:"items"`
}

// listingItem es un producto tal como lo extrajo el gateway: texto sin parsear.
type listingItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
	Link        string `json:"link"`
}

// ShopScraper liga el Client a una tienda concreta; implementa ports.Scraper.
type ShopScraper struct {
	client *Client
	shop   domain.Shop
}

// NewShopScraper crea un Scraper para la tienda dada.
func NewShopScraper(client *Client, shop domain.Shop) *ShopScraper {
	return &ShopScraper{client: client, shop: shop}
}

// FetchListings implementa ports.Scraper.
func (s *ShopScraper) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	return s.client.Listings(ctx, s.shop)
}
