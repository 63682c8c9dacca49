package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kabumFixture = `{
	"items": [
		{
			"description": "Placa de Vídeo Asus RTX 3060, 12GB GDDR6",
			"price": "R$ 2.500,00",
			"link": "https://kabum.example/p/1"
		},
		{
			"description": "Mouse Gamer RGB",
			"price": "R$ 99,90",
			"link": "https://kabum.example/p/2"
		}
	]
}`

func testCatalog() []domain.Gpu {
	return []domain.Gpu{
		{Model: "RTX 3060", Brand: domain.BrandNVIDIA, Power: 170,
			Revenues: []domain.Revenue{{Origin: "nicehash", Value: 7.3}}},
	}
}

func TestKabumProvider_FetchPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/listings/Kabum", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(kabumFixture))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	provider := NewKabum(NewShopScraper(client, domain.ShopKabum))

	prices, err := provider.FetchPrices(context.Background(), testCatalog())
	require.NoError(t, err)

	require.Len(t, prices, 1)
	assert.Equal(t, domain.ShopKabum, prices[0].Shop)
	assert.Equal(t, "Asus RTX 3060", prices[0].Description)
	assert.InDelta(t, 2500.00, prices[0].Price, 0.001)
}

func TestProvider_GatewayErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	provider := NewPichau(NewShopScraper(client, domain.ShopPichau))

	_, err := provider.FetchPrices(context.Background(), testCatalog())
	assert.Error(t, err)
}

func TestFixtureScraper(t *testing.T) {
	scraper := NewFixtureScraper("../../../testdata/fixtures/kabum_listings.json")

	items, err := scraper.FetchListings(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)
	assert.NotEmpty(t, items[0].Description)
	assert.NotEmpty(t, items[0].PriceText)
}
