package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// DefaultTariffKWh es la tarifa eléctrica local en BRL por kWh.
	DefaultTariffKWh = 0.74

	hoursPerDay  = 24
	daysPerMonth = 30
)

// CostModel calcula las métricas financieras de una GPU a un precio propuesto.
// Toda la aritmética monetaria es decimal exacta: los redondeos intermedios
// (6 decimales para el coste diario, 2 para las cifras mensuales) forman parte
// del contrato porque el ordenamiento y el display dependen de ellos.
type CostModel struct {
	TariffKWh float64
}

// NewCostModel crea un CostModel. Una tarifa no positiva usa DefaultTariffKWh.
func NewCostModel(tariffKWh float64) CostModel {
	if tariffKWh <= 0 {
		tariffKWh = DefaultTariffKWh
	}
	return CostModel{TariffKWh: tariffKWh}
}

// DailyRunningCost es el gasto de electricidad por día asumiendo operación
// continua 24h: (power/1000) × tarifa × 24, redondeado a 6 decimales.
func (m CostModel) DailyRunningCost(g Gpu) float64 {
	return decimal.NewFromInt(int64(g.Power)).
		Div(decimal.NewFromInt(1000)).
		Mul(decimal.NewFromFloat(m.TariffKWh)).
		Mul(decimal.NewFromInt(hoursPerDay)).
		Round(6).InexactFloat64()
}

// MonthlyRunningCost es el coste diario (ya redondeado) × 30, a 2 decimales.
func (m CostModel) MonthlyRunningCost(g Gpu) float64 {
	return decimal.NewFromFloat(m.DailyRunningCost(g)).
		Mul(decimal.NewFromInt(daysPerMonth)).
		Round(2).InexactFloat64()
}

// MonthlyNetProfit es el ingreso mensual según BestRevenue menos el coste
// mensual de energía, a 2 decimales.
func (m CostModel) MonthlyNetProfit(g Gpu) float64 {
	return decimal.NewFromFloat(g.BestRevenue().Value).
		Mul(decimal.NewFromInt(daysPerMonth)).
		Sub(decimal.NewFromFloat(m.MonthlyRunningCost(g))).
		Round(2).InexactFloat64()
}

// ROI es el lucro neto mensual como porcentaje del precio de compra,
// a 1 decimal. Devuelve 0 si el precio no es positivo.
func (m CostModel) ROI(g Gpu, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return decimal.NewFromFloat(m.MonthlyNetProfit(g)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromFloat(price)).
		Round(1).InexactFloat64()
}

// Payback son los meses necesarios para que el lucro neto amortice el precio,
// a 1 decimal. Con lucro negativo el resultado es negativo y con lucro cero
// es +Inf: no es un error, el ordenamiento empuja esas entradas al extremo.
func (m CostModel) Payback(g Gpu, price float64) float64 {
	net := m.MonthlyNetProfit(g)
	if net == 0 {
		return math.Inf(1)
	}
	return decimal.NewFromFloat(price).
		Div(decimal.NewFromFloat(net)).
		Round(1).InexactFloat64()
}
