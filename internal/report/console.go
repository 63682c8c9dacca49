package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.ReportWriter imprimiendo a stdout.
type Console struct {
	out   io.Writer
	model domain.CostModel
	table bool
}

// NewConsole crea el reporte de consola. Con table=false imprime el resumen
// compacto de una línea; con table=true, la tabla completa.
func NewConsole(model domain.CostModel, table bool) *Console {
	return &Console{out: os.Stdout, model: model, table: table}
}

// NewConsoleWriter crea un reporte de consola para tests.
func NewConsoleWriter(w io.Writer, model domain.CostModel, table bool) *Console {
	return &Console{out: w, model: model, table: table}
}

// Write imprime las ofertas en el modo configurado.
func (c *Console) Write(_ context.Context, prices []domain.GpuPrice) error {
	if len(prices) == 0 {
		fmt.Fprintf(c.out, "[%s] no offers matched the catalog\n", time.Now().Format("15:04:05"))
		return nil
	}

	if c.table {
		c.printFull(prices)
	} else {
		c.printCompact(prices)
	}
	return nil
}

// printCompact imprime lo esencial en una línea.
func (c *Console) printCompact(prices []domain.GpuPrice) {
	best := prices[0]
	fmt.Fprintf(c.out, "[%s] %d offers | best: %s (%s) R$%s payback %s months\n",
		time.Now().Format("15:04:05"),
		len(prices),
		best.Gpu.Model,
		best.Shop,
		formatMoney(best.Price),
		formatShort(c.model.Payback(best.Gpu, best.Price)),
	)
}

// printFull imprime la tabla ordenada por payback.
func (c *Console) printFull(prices []domain.GpuPrice) {
	fmt.Fprintf(c.out, "\n[%s] %d offers, ordered by payback\n",
		time.Now().Format("15:04:05"), len(prices))

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Shop", "Model", "Board", "Price", "Energy/mo", "Net/mo", "ROI %", "Origin", "Payback")

	for i, p := range prices {
		table.Append(
			fmt.Sprintf("%d", i+1),
			string(p.Shop),
			p.Gpu.Model,
			string(p.Manufacturer),
			"R$"+formatMoney(p.Price),
			formatMoney(c.model.MonthlyRunningCost(p.Gpu)),
			formatMoney(c.model.MonthlyNetProfit(p.Gpu)),
			formatPlain(c.model.ROI(p.Gpu, p.Price)),
			p.Gpu.BestRevenue().Origin,
			formatShort(c.model.Payback(p.Gpu, p.Price)),
		)
	}

	table.Render()

	fmt.Fprintln(c.out, "  Energy/mo = gasto de electricidad | Net/mo = ingreso de minado menos energía")
	fmt.Fprintln(c.out, "  Payback en meses; negativo = la placa no se paga con el ingreso actual")
}
