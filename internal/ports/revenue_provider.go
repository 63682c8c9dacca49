package ports

import (
	"context"

	"github.com/alejandrodnm/gpuroi/internal/domain"
)

// RevenueProvider es un oráculo de rentabilidad de minado.
type RevenueProvider interface {
	// FetchGpus devuelve las GPUs que el oráculo conoce, ya convertidas al
	// modelo canónico: nombre normalizado, marca detectada y el ingreso
	// diario estimado en BRL.
	FetchGpus(ctx context.Context) ([]domain.Gpu, error)
}
