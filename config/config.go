package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del scanner.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig contiene los base URLs de los colaboradores externos.
type APIConfig struct {
	NiceHashBase   string `yaml:"nicehash_base"`
	WhatToMineBase string `yaml:"whattomine_base"`
	ScrapeBase     string `yaml:"scrape_base"` // gateway de scraping (sidecar)
}

// ReportConfig controla el reporte y el modelo de costes.
type ReportConfig struct {
	Output      string  `yaml:"output"`       // ruta del CSV
	TariffKWh   float64 `yaml:"tariff_kwh"`   // tarifa eléctrica local, BRL/kWh
	FixturesDir string  `yaml:"fixtures_dir"` // listados locales para dry-run
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("SCRAPE_BASE"); v != "" {
		cfg.API.ScrapeBase = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.API.NiceHashBase == "" {
		cfg.API.NiceHashBase = "https://api2.nicehash.com"
	}
	if cfg.API.WhatToMineBase == "" {
		cfg.API.WhatToMineBase = "https://whattomine.com"
	}
	if cfg.API.ScrapeBase == "" {
		cfg.API.ScrapeBase = "http://localhost:8089"
	}
	if cfg.Report.Output == "" {
		cfg.Report.Output = "placas.csv"
	}
	if cfg.Report.TariffKWh <= 0 {
		cfg.Report.TariffKWh = 0.74
	}
	if cfg.Report.FixturesDir == "" {
		cfg.Report.FixturesDir = "testdata/fixtures"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
