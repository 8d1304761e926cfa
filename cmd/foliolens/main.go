package main

import (
	"bufio"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"FolioLens/internal/chart"
	"FolioLens/internal/collector"
	"FolioLens/internal/config"
	"FolioLens/internal/exporter"
	"FolioLens/internal/locale"
	"FolioLens/internal/menu"
	"FolioLens/internal/pipeline"
	"FolioLens/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	loc := cfg.ResolveLocale()

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "rest":
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "finance-go":
		fetcher = collector.NewFinanceGoFetcher(*cfg.DataSource.AutoAdjust)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy, *cfg.DataSource.AutoAdjust)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	outDir := cfg.OutputDir
	if outDir == "" {
		if outDir, err = exporter.DefaultDir(); err != nil {
			log.Fatalf("[FATAL] resolve output directory: %v", err)
		}
	}

	in := bufio.NewReader(os.Stdin)
	run := pipeline.RunConfig{
		Collector:        collector.NewCollector(fetcher, cfg.Years),
		Exporter:         exporter.NewCSVExporter(outDir, loc),
		Menu:             menu.New(cfg.Portfolio, in, os.Stdout, loc),
		Locale:           loc,
		InvalidSelection: locale.SelectionPolicy(cfg.InvalidSelection),
		Out:              os.Stdout,
	}
	if *cfg.Chart.Enabled {
		run.Renderer = chart.NewRenderer(loc, cfg.Years)
		run.Viewer = chart.NewSystemViewer(in, os.Stdout, loc.Printer().Sprintf(locale.MsgCloseChart))
	}
	pl := pipeline.New(run)

	if cfg.Schedule.Cron == "" {
		pl.Loop()
		return
	}

	// Scheduled refresh: export only, no menu and no charts.
	sched := scheduler.NewScheduler(pl, cfg.Schedule.Tickers)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		sched.RunAsync()
	}

	log.Printf("[INFO] refreshing %d tickers on %q. Press Ctrl+C to stop.", len(cfg.Schedule.Tickers), cfg.Schedule.Cron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}
