package nicehash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alejandrodnm/gpuroi/internal/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devicesFixture = `{
	"devices": [
		{"category": "GPU", "name": "NVIDIA RTX 3060", "power": 170, "paying": 0.0001},
		{"category": "GPU", "name": "NVIDIA RTX 3060 Ti", "power": 200, "paying": 0.00012},
		{"category": "GPU", "name": "AMD Radeon RX 6600", "power": 132, "paying": 0.00008},
		{"category": "ASIC", "name": "Antminer S19", "power": 3250, "paying": 0.001}
	]
}`

const ratesFixture = `{
	"list": [
		{"fromCurrency": "BTC", "toCurrency": "USD", "exchangeRate": "50000"},
		{"fromCurrency": "USD", "toCurrency": "BRL", "exchangeRate": "5.00"}
	]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case devicesPath:
			w.Write([]byte(devicesFixture))
		case ratesPath:
			w.Write([]byte(ratesFixture))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGpuProvider_FetchGpus(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL)
	provider := NewGpuProvider(client, currency.NewConverter(client))

	gpus, err := provider.FetchGpus(context.Background())
	require.NoError(t, err)

	// el ASIC queda fuera
	require.Len(t, gpus, 3)

	// orden por longitud de modelo descendente
	assert.Equal(t, "Radeon RX 6600", gpus[0].Model)
	assert.Equal(t, "RTX 3060 Ti", gpus[1].Model)

	for _, g := range gpus {
		if g.Model == "RTX 3060" {
			// 0.0001 BTC → 5.00 USD → 25.00 BRL
			require.Len(t, g.Revenues, 1)
			assert.Equal(t, "nicehash", g.Revenues[0].Origin)
			assert.InDelta(t, 25.00, g.Revenues[0].Value, 0.001)
			assert.Equal(t, 170, g.Power)
		}
		if g.Model == "Radeon RX 6600" {
			assert.Equal(t, "AMD", string(g.Brand))
		}
	}
}

func TestGpuProvider_MissingPairAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == ratesPath {
			w.Write([]byte(`{"list": [{"fromCurrency": "BTC", "toCurrency": "USD", "exchangeRate": "50000"}]}`))
			return
		}
		w.Write([]byte(devicesFixture))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	provider := NewGpuProvider(client, currency.NewConverter(client))

	_, err := provider.FetchGpus(context.Background())
	require.ErrorIs(t, err, currency.ErrPairNotFound)
}

func TestClient_RetriesOn500(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(ratesFixture))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	rates, err := client.FetchRates(context.Background())
	require.NoError(t, err)
	assert.Len(t, rates, 2)
	assert.Equal(t, 2, attempts)
}
