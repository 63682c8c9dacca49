package ports

import (
	"context"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// ReportWriter emite el reporte final: las ofertas ya ordenadas por payback
// ascendente, con las métricas calculadas al momento de escribir.
type ReportWriter interface {
	Write(ctx context.Context, prices []domain.GpuPrice) error
}
