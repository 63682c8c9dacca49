// Package report emite el reporte final: el CSV compatible con el formato
// histórico y una vista de consola.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// csvHeader es el contrato externo del archivo: una fila de cabecera, campos
// entre comillas, orden fijo de columnas. No cambiar sin coordinar con quien
// consuma el archivo.
const csvHeader = `"Modelo","Preço","Retorno %","Gasto Energia","Retorno Liquido","Melhor Retorno","Se paga em","Link"`

// CSVWriter implementa ports.ReportWriter escribiendo el archivo delimitado.
type CSVWriter struct {
	path  string
	model domain.CostModel
}

// NewCSVWriter crea el writer para la ruta dada.
func NewCSVWriter(path string, model domain.CostModel) *CSVWriter {
	return &CSVWriter{path: path, model: model}
}

// Write vuelca las ofertas, ya ordenadas por payback, al archivo.
func (c *CSVWriter) Write(_ context.Context, prices []domain.GpuPrice) error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("report.CSVWriter: create %q: %w", c.path, err)
	}
	defer f.Close()

	if err := c.writeTo(f, prices); err != nil {
		return fmt.Errorf("report.CSVWriter: write %q: %w", c.path, err)
	}

	slog.Info("csv report written", "path", c.path, "rows", len(prices))
	return nil
}

// writeTo escribe cabecera y filas. Las comillas son incondicionales y los
// montos usan coma decimal; el ROI conserva el punto (formato histórico).
func (c *CSVWriter) writeTo(w io.Writer, prices []domain.GpuPrice) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}

	for _, p := range prices {
		_, err := fmt.Fprintf(w, "\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			p.Gpu.Model,
			formatMoney(p.Price),
			formatPlain(c.model.ROI(p.Gpu, p.Price)),
			formatMoney(c.model.MonthlyRunningCost(p.Gpu)),
			formatMoney(c.model.MonthlyNetProfit(p.Gpu)),
			p.Gpu.BestRevenue().Origin,
			formatShort(c.model.Payback(p.Gpu, p.Price)),
			p.Link,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// formatMoney formatea con 2 decimales y coma decimal ("2500.5" → "2500,50").
func formatMoney(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// formatShort formatea en la forma más corta con coma decimal
// ("42.1" → "42,1", "42" queda "42").
func formatShort(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

// formatPlain formatea en la forma más corta con punto decimal.
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
