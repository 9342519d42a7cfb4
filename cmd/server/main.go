package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/api"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/config"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/database"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/deduction"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "", "Path to configuration file")
	seed        = flag.Bool("seed", false, "Seed demo data on startup")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *metricsPort != 0 {
		cfg.MetricsPort = *metricsPort
	}

	if err := database.InitDB(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if *seed {
		if err := seedDemoData(database.GetDB()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	store := deduction.NewGormStore(database.GetDB())
	deductionConfig := deduction.DefaultConfig()
	if len(cfg.WasteReasons) > 0 {
		deductionConfig = deduction.Config{WasteReasons: cfg.WasteReasons}
	}
	service := deduction.NewService(store, deductionConfig)

	inventoryAPI := api.NewInventoryAPI(service, store, cfg.AuthSecret)

	go startMetricsServer(cfg.MetricsPort)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: inventoryAPI.Router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Inventory engine listening on :%d", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func startMetricsServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("Metrics server listening on :%d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
