package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockStress/internal/api"
	"StockStress/internal/collector"
	"StockStress/internal/config"
	"StockStress/internal/notifier"
	"StockStress/internal/render"
	"StockStress/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockStress starting...")

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

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// One-shot mode: bot assess [symbol]
	if len(os.Args) > 1 && os.Args[1] == "assess" {
		symbol := cfg.Symbol
		if len(os.Args) > 2 {
			symbol = os.Args[2]
		}
		runAssess(fetcher, symbol, cfg.Range, cfg.RSIPeriod)
		return
	}

	runService(cfg, fetcher)
}

// runAssess fetches once and prints the step-by-step walkthrough.
func runAssess(fetcher collector.Fetcher, symbol, historyRange string, rsiPeriod int) {
	series, err := fetcher.FetchHistory(symbol, historyRange)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) {
			log.Fatalf("[FATAL] no data for %s (%s): check the symbol", symbol, historyRange)
		}
		log.Fatalf("[FATAL] fetch %s history: %v", symbol, err)
	}

	interactive := os.Getenv("INTERACTIVE") == "true"
	w := render.NewWalkthrough(os.Stdout, os.Stdin, interactive)
	if _, err := w.Run(series, rsiPeriod); err != nil {
		log.Fatalf("[FATAL] assessment: %v", err)
	}
}

func runService(cfg *config.Config, fetcher collector.Fetcher) {
	col := collector.NewCollector(fetcher, cfg.Symbol)

	// Telegram is optional; fall back to log output.
	var n notifier.Notifier
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		n = tn
	} else {
		log.Println("[WARN] telegram not configured, reports go to the log")
		n = notifier.NewLogNotifier()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, n, cfg.Range, cfg.RSIPeriod)
	if err := sched.Register(cfg.Schedule.AssessCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// HTTP API
	handler := api.NewHandler(fetcher, cfg.Range, cfg.RSIPeriod)
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: api.SetupRoutes(handler)}
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] http server: %v", err)
		}
	}()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing assessment now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockStress is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] StockStress stopped")
}
