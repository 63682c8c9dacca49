package matcher

import (
	"testing"

	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Gpu {
	return []domain.Gpu{
		{Model: "RTX 3060 Ti", Brand: domain.BrandNVIDIA, Power: 200,
			Revenues: []domain.Revenue{{Origin: "nicehash", Value: 8.0}}},
		{Model: "RTX 3060", Brand: domain.BrandNVIDIA, Power: 170,
			Revenues: []domain.Revenue{{Origin: "nicehash", Value: 7.3}}},
		{Model: "RX 6600", Brand: domain.BrandAMD, Power: 132,
			Revenues: []domain.Revenue{{Origin: "whattomine", Value: 4.4}}},
	}
}

func kabumConfig() Config {
	return Config{
		Shop:           domain.ShopKabum,
		PricePrefix:    "R$",
		RequiredSignal: "placa de vídeo",
	}
}

func TestMatch_FullPipeline(t *testing.T) {
	items := []domain.Listing{{
		Description: "Placa de Vídeo Asus RTX 3060, 12GB GDDR6, DLSS",
		PriceText:   "R$ 2.500,00",
		Link:        "https://kabum.example/p/123",
	}}

	got := Match(items, testCatalog(), kabumConfig())

	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "Asus RTX 3060", p.Description)
	assert.InDelta(t, 2500.00, p.Price, 0.001)
	assert.Equal(t, domain.ManufacturerAsus, p.Manufacturer)
	assert.Equal(t, "RTX 3060", p.Gpu.Model)
	assert.Equal(t, domain.ShopKabum, p.Shop)
	assert.Equal(t, "https://kabum.example/p/123", p.Link)
}

func TestMatch_RejectsNonGpuListing(t *testing.T) {
	items := []domain.Listing{{
		Description: "Gabinete Gamer RTX 3060 Style, RGB",
		PriceText:   "R$ 300,00",
	}}

	got := Match(items, testCatalog(), kabumConfig())
	assert.Empty(t, got)
}

func TestMatch_SkipsUnknownModel(t *testing.T) {
	items := []domain.Listing{{
		Description: "Placa de Vídeo Galax GTX 1630, 4GB",
		PriceText:   "R$ 899,90",
	}}

	got := Match(items, testCatalog(), kabumConfig())
	assert.Empty(t, got)
}

func TestMatch_NoSignalRequired(t *testing.T) {
	// Pichau y Terabyte no exigen el substring "placa de vídeo"
	cfg := Config{Shop: domain.ShopPichau, PricePrefix: "à vista R$"}
	items := []domain.Listing{{
		Description: "Gigabyte GeForce RTX 3060 Ti Eagle OC 8GB",
		PriceText:   "à vista R$ 3.199,99",
	}}

	got := Match(items, testCatalog(), cfg)

	require.Len(t, got, 1)
	assert.Equal(t, "RTX 3060 Ti", got[0].Gpu.Model)
	assert.InDelta(t, 3199.99, got[0].Price, 0.001)
	assert.Equal(t, domain.ManufacturerGigabyte, got[0].Manufacturer)
}

func TestMatch_SkipsUnparseablePrice(t *testing.T) {
	items := []domain.Listing{{
		Description: "Placa de Vídeo MSI RTX 3060 Ventus",
		PriceText:   "consulte",
	}}

	got := Match(items, testCatalog(), kabumConfig())
	assert.Empty(t, got)
}

func TestCleanDescription(t *testing.T) {
	got := CleanDescription("Placa de Vídeo Asus RTX 3060, 12GB, GDDR6")
	assert.Equal(t, "Asus RTX 3060", got)
}

func TestCleanDescription_NoComma(t *testing.T) {
	got := CleanDescription("  Zotac RTX 3070 Twin Edge ")
	assert.Equal(t, "Zotac RTX 3070 Twin Edge", got)
}

func TestParsePrice_RoundTrip(t *testing.T) {
	got, err := ParsePrice("R$ 1.234,56", "R$")
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, got, 0.0001)
}

func TestParsePrice_PichauPrefix(t *testing.T) {
	got, err := ParsePrice("à vista R$ 10.499,90", "à vista R$")
	require.NoError(t, err)
	assert.InDelta(t, 10499.90, got, 0.0001)
}

func TestParsePrice_NoThousands(t *testing.T) {
	got, err := ParsePrice("R$ 899,90", "R$")
	require.NoError(t, err)
	assert.InDelta(t, 899.90, got, 0.0001)
}

func TestParsePrice_Invalid(t *testing.T) {
	_, err := ParsePrice("sob consulta", "R$")
	assert.Error(t, err)
}
