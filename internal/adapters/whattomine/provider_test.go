package whattomine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alejandrodnm/gpuroi/internal/currency"
	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gpusFixture = `{
	"gpus": [
		{"name": "NVIDIA RTX 3060", "power": 170, "revenue": "$1.46"},
		{"name": "AMD RX 6600", "power": 132, "revenue": "$0.88"},
		{"name": "NVIDIA RTX 4090", "power": 450, "revenue": "n/a"}
	]
}`

type staticRates struct{}

func (staticRates) FetchRates(_ context.Context) ([]currency.Rate, error) {
	return []currency.Rate{
		{FromCurrency: "USD", ToCurrency: "BRL", ExchangeRate: "5.00"},
	}, nil
}

func TestGpuProvider_FetchGpus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, gpusPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(gpusFixture))
	}))
	defer srv.Close()

	provider := NewGpuProvider(NewClient(srv.URL), currency.NewConverter(staticRates{}))

	gpus, err := provider.FetchGpus(context.Background())
	require.NoError(t, err)

	// la fila con revenue "n/a" se descarta
	require.Len(t, gpus, 2)

	assert.Equal(t, "RTX 3060", gpus[0].Model)
	assert.Equal(t, domain.BrandNVIDIA, gpus[0].Brand)
	assert.Equal(t, 170, gpus[0].Power)
	require.Len(t, gpus[0].Revenues, 1)
	assert.Equal(t, "whattomine", gpus[0].Revenues[0].Origin)
	// 1.46 USD × 5.00 = 7.30 BRL
	assert.InDelta(t, 7.30, gpus[0].Revenues[0].Value, 0.001)

	assert.Equal(t, "RX 6600", gpus[1].Model)
}

func TestGpuProvider_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	provider := NewGpuProvider(NewClient(srv.URL), currency.NewConverter(staticRates{}))

	_, err := provider.FetchGpus(context.Background())
	assert.Error(t, err)
}

func TestNormalizeModel(t *testing.T) {
	assert.Equal(t, "RTX 3060", normalizeModel("NVIDIA RTX 3060"))
	assert.Equal(t, "RX 6600", normalizeModel("AMDRX 6600"))
	assert.Equal(t, "Arc A770", normalizeModel("Arc A770\n"))
}
