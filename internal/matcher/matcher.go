// Package matcher convierte los listados crudos de una tienda en GpuPrice:
// filtra lo que no es GPU, matchea contra el catálogo, detecta el fabricante
// de la placa y parsea el precio localizado.
package matcher

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alejandrodnm/gpuroi/internal/catalog"
	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// boilerplate que las tres tiendas ponen delante del nombre del producto.
const descriptionNoise = "Placa de Vídeo"

// Config es lo que varía entre tiendas. El pipeline de matching es el mismo.
type Config struct {
	Shop domain.Shop

	// PricePrefix es el texto que la tienda antepone al número
	// ("R$" en Kabum y Terabyte, "à vista R$" en Pichau).
	PricePrefix string

	// RequiredSignal, si no está vacío, es el substring (case-insensitive)
	// que la descripción debe contener para considerarse un listado de GPU.
	RequiredSignal string
}

// Match aplica el pipeline de la tienda sobre los listados crudos.
// Los listados que no corresponden a una GPU del catálogo se descartan en
// silencio: es el caso esperado de alta frecuencia, no un error.
func Match(items []domain.Listing, gpus []domain.Gpu, cfg Config) []domain.GpuPrice {
	prices := make([]domain.GpuPrice, 0, len(items))

	for _, item := range items {
		if cfg.RequiredSignal != "" &&
			!strings.Contains(strings.ToLower(item.Description), strings.ToLower(cfg.RequiredSignal)) {
			continue
		}

		gpu, ok := catalog.Find(gpus, item.Description)
		if !ok {
			continue
		}

		price, err := ParsePrice(item.PriceText, cfg.PricePrefix)
		if err != nil {
			slog.Debug("unparseable price, skipping listing",
				"shop", cfg.Shop,
				"price_text", item.PriceText,
				"err", err,
			)
			continue
		}

		prices = append(prices, domain.GpuPrice{
			Description:  CleanDescription(item.Description),
			Price:        price,
			Manufacturer: domain.DetectManufacturer(item.Description),
			Gpu:          gpu,
			Shop:         cfg.Shop,
			Link:         item.Link,
		})
	}

	return prices
}

// CleanDescription deja la descripción lista para display: el texto antes de
// la primera coma, sin el boilerplate "Placa de Vídeo", sin espacios sueltos.
func CleanDescription(s string) string {
	head, _, _ := strings.Cut(s, ",")
	head = strings.Replace(head, descriptionNoise, "", 1)
	return strings.TrimSpace(head)
}

// ParsePrice convierte un precio localizado ("R$ 1.234,56") a número:
// quita el prefijo de la tienda, los separadores de miles y cambia la coma
// decimal por punto.
func ParsePrice(raw, prefix string) (float64, error) {
	s := raw
	if prefix != "" {
		s = strings.Replace(s, prefix, "", 1)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("matcher.ParsePrice: %q: %w", raw, err)
	}
	return v, nil
}
