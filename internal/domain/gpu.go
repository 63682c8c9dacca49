package domain

import "strings"

// Brand es la marca del chip gráfico (no del fabricante de la placa).
type Brand string

const (
	BrandNVIDIA Brand = "NVIDIA"
	BrandAMD    Brand = "AMD"
	BrandOther  Brand = "Other"
)

// DetectBrand deduce la marca del chip a partir del nombre crudo del dispositivo.
func DetectBrand(name string) Brand {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "amd") || strings.Contains(lower, "radeon") {
		return BrandAMD
	}
	if strings.Contains(lower, "nvidia") {
		return BrandNVIDIA
	}
	return BrandOther
}

// Manufacturer es el fabricante de la placa (board partner): Asus, MSI, etc.
type Manufacturer string

const (
	ManufacturerGigabyte   Manufacturer = "Gigabyte"
	ManufacturerZOTAC      Manufacturer = "ZOTAC"
	ManufacturerAsus       Manufacturer = "Asus"
	ManufacturerPowerColor Manufacturer = "PowerColor"
	ManufacturerGalax      Manufacturer = "Galax"
	ManufacturerPCYES      Manufacturer = "PCYES"
	ManufacturerEVGA       Manufacturer = "EVGA"
	ManufacturerGainward   Manufacturer = "Gainward"
	ManufacturerMSI        Manufacturer = "MSI"
	ManufacturerAFOX       Manufacturer = "AFOX"
	ManufacturerOther      Manufacturer = "Other"
)

// knownManufacturers define el orden de prioridad del match: el primero que
// aparezca en la descripción gana.
var knownManufacturers = []Manufacturer{
	ManufacturerGigabyte,
	ManufacturerZOTAC,
	ManufacturerAsus,
	ManufacturerPowerColor,
	ManufacturerGalax,
	ManufacturerPCYES,
	ManufacturerEVGA,
	ManufacturerGainward,
	ManufacturerMSI,
	ManufacturerAFOX,
}

// DetectManufacturer busca el fabricante de la placa en la descripción del
// producto (case-insensitive). Devuelve ManufacturerOther si no hay match.
func DetectManufacturer(description string) Manufacturer {
	lower := strings.ToLower(description)
	for _, m := range knownManufacturers {
		if strings.Contains(lower, strings.ToLower(string(m))) {
			return m
		}
	}
	return ManufacturerOther
}

// Shop es una de las tiendas de retail soportadas.
type Shop string

const (
	ShopKabum    Shop = "Kabum"
	ShopPichau   Shop = "Pichau"
	ShopTerabyte Shop = "Terabyte"
)

// Revenue es la estimación de un oráculo del ingreso diario de minado de una
// GPU, en BRL después de la conversión de moneda.
type Revenue struct {
	Origin string
	Value  float64
}

// Gpu es un modelo canónico de hardware en el catálogo.
// Inmutable una vez que la agregación del catálogo termina.
type Gpu struct {
	Model    string // nombre normalizado, sin el prefijo de marca
	Brand    Brand
	Power    int // consumo nominal en watts
	Revenues []Revenue
}

// BestRevenue devuelve la estimación de ingreso con el valor MÍNIMO.
// El nombre viene del diseño original: se usa el mínimo como estimación
// conservadora. Empates se resuelven por orden de llegada.
func (g Gpu) BestRevenue() Revenue {
	var best Revenue
	for i, r := range g.Revenues {
		if i == 0 || r.Value < best.Value {
			best = r
		}
	}
	return best
}

// Listing es un producto crudo tal como lo devuelve el scraper de una tienda:
// texto sin parsear, para que el core lo normalice.
type Listing struct {
	Description string
	PriceText   string
	Link        string
}
