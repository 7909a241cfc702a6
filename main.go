package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amortizer/config"
	httpLayer "amortizer/http"
	"amortizer/repository"
	"amortizer/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	scheduleRepo := repository.NewScheduleRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	scheduleService := service.NewScheduleService(scheduleRepo, cache)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	comparisonService := service.NewComparisonService(scheduleService)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)

	exportService := service.NewExportService()
	exportHandler := httpLayer.NewExportHandler(scheduleService, exportService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimitInterval())
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.BuildSchedule),
		),
	)

	mux.Handle(
		"/schedule/compare-extra",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(comparisonHandler.CompareExtraPayment),
		),
	)

	mux.Handle(
		"/schedule/export",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(exportHandler.ExportSchedule),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
