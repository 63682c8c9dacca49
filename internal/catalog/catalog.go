// Package catalog construye la lista canónica de GPUs conocidas mezclando
// los dos oráculos de ingresos, y la usa como ground truth para matchear
// descripciones de retail.
package catalog

import (
	"log/slog"
	"strings"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// Build mezcla los dos oráculos en un catálogo único.
//
// No es una mezcla simétrica: primary manda sobre marca y potencia cuando un
// nombre colisiona; secondary solo aporta su observación de ingreso. El match
// es igualdad exacta del modelo, case-insensitive. El resultado conserva el
// orden de primary y después las entradas de secondary que no matchearon,
// en su orden original.
func Build(primary, secondary []domain.Gpu) []domain.Gpu {
	bySecondary := make(map[string]int, len(secondary))
	for i, g := range secondary {
		key := strings.ToLower(g.Model)
		if _, ok := bySecondary[key]; !ok {
			bySecondary[key] = i
		}
	}

	merged := 0
	matched := make(map[string]bool, len(primary))
	out := make([]domain.Gpu, 0, len(primary)+len(secondary))

	for _, g := range primary {
		key := strings.ToLower(g.Model)
		if idx, ok := bySecondary[key]; ok && !matched[key] {
			revenues := make([]domain.Revenue, 0, len(g.Revenues)+len(secondary[idx].Revenues))
			revenues = append(revenues, g.Revenues...)
			revenues = append(revenues, secondary[idx].Revenues...)
			g.Revenues = revenues
			matched[key] = true
			merged++
		}
		out = append(out, g)
	}

	for _, g := range secondary {
		if !matched[strings.ToLower(g.Model)] {
			out = append(out, g)
		}
	}

	slog.Debug("catalog built",
		"primary", len(primary),
		"secondary", len(secondary),
		"merged", merged,
		"total", len(out),
	)
	return out
}

// Find devuelve la primera GPU del catálogo cuyo modelo aparece como
// substring (case-insensitive) de la descripción. El match es más laxo que
// el de Build a propósito: las descripciones de retail envuelven el modelo
// en texto de marketing.
func Find(gpus []domain.Gpu, description string) (domain.Gpu, bool) {
	lower := strings.ToLower(description)
	for _, g := range gpus {
		if g.Model == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(g.Model)) {
			return g, true
		}
	}
	return domain.Gpu{}, false
}
