package domain

// GpuPrice es una oferta de retail observada: un Listing que hizo match contra
// el catálogo, con el precio ya parseado.
//
// Las métricas financieras (coste, lucro, ROI, payback) NO se guardan aquí:
// se recalculan en cada acceso vía CostModel para que nunca puedan observar
// un estado viejo del catálogo.
type GpuPrice struct {
	Description  string // descripción limpia para display
	Price        float64
	Manufacturer Manufacturer
	Gpu          Gpu
	Shop         Shop
	Link         string
}
