package nicehash

// DTOs raw de la API de NiceHash. Solo se usan dentro de este paquete;
// la conversión a domain entities vive en provider.go.

// devicesResponse es la respuesta de GET /main/api/v2/public/profcalc/devices.
type devicesResponse struct {
	Devices []device `json:"devices"`
}

// device es un dispositivo del calculador de rentabilidad.
type device struct {
	Category string  `json:"category"` // "GPU" | "CPU" | "ASIC"
	Name     string  `json:"name"`
	Power    float64 `json:"power"`  // watts
	Paying   float64 `json:"paying"` // BTC/día
}

// ratesResponse es la respuesta de GET /main/api/v2/exchangeRate/list.
type ratesResponse struct {
	List []exchangeRate `json:"list"`
}

// exchangeRate es una tasa de cambio; el valor llega como string.
type exchangeRate struct {
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	ExchangeRate string `json:"exchangeRate"`
}
