package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alejandrodnm/gpuroi/config"
	"github.com/alejandrodnm/gpuroi/internal/adapters/nicehash"
	"github.com/alejandrodnm/gpuroi/internal/adapters/scrape"
	"github.com/alejandrodnm/gpuroi/internal/adapters/whattomine"
	"github.com/alejandrodnm/gpuroi/internal/currency"
	"github.com/alejandrodnm/gpuroi/internal/domain"
	"github.com/alejandrodnm/gpuroi/internal/ports"
	"github.com/alejandrodnm/gpuroi/internal/report"
	"github.com/alejandrodnm/gpuroi/internal/scanner"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	dryRun := flag.Bool("dry-run", false, "read retail listings from local fixtures instead of the scrape gateway")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	table := flag.Bool("table", false, "print full table (default: compact 1-line)")
	output := flag.String("out", "", "CSV output path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *output != "" {
		cfg.Report.Output = *output
	}
	setupLogger(cfg.Log)

	slog.Info("gpuroi starting",
		"config", *configPath,
		"dry_run", *dryRun,
		"output", cfg.Report.Output,
	)

	nh := nicehash.NewClient(cfg.API.NiceHashBase)
	conv := currency.NewConverter(nh)

	primary := nicehash.NewGpuProvider(nh, conv)
	secondary := whattomine.NewGpuProvider(whattomine.NewClient(cfg.API.WhatToMineBase), conv)

	shops := buildShops(cfg, *dryRun)

	model := domain.NewCostModel(cfg.Report.TariffKWh)
	s := scanner.New(primary, secondary, shops, model,
		report.NewConsole(model, *table),
		report.NewCSVWriter(cfg.Report.Output, model),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := s.Run(ctx); err != nil {
		slog.Error("scan failed", "err", err)
		os.Exit(1)
	}
}

// buildShops arma los providers de las tres tiendas. En dry-run los listados
// salen de los fixtures locales en vez del gateway de scraping.
func buildShops(cfg *config.Config, dryRun bool) []ports.PriceProvider {
	gateway := scrape.NewClient(cfg.API.ScrapeBase)

	scraperFor := func(shop domain.Shop) ports.Scraper {
		if dryRun {
			name := strings.ToLower(string(shop)) + "_listings.json"
			return scrape.NewFixtureScraper(filepath.Join(cfg.Report.FixturesDir, name))
		}
		return scrape.NewShopScraper(gateway, shop)
	}

	return []ports.PriceProvider{
		scrape.NewKabum(scraperFor(domain.ShopKabum)),
		scrape.NewPichau(scraperFor(domain.ShopPichau)),
		scrape.NewTerabyte(scraperFor(domain.ShopTerabyte)),
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
