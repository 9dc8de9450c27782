package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/api"
	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/fetch"
	"github.com/hayseedprops/hayseed-dashboard/internal/middleware"
	"github.com/hayseedprops/hayseed-dashboard/internal/refresh"
	"github.com/hayseedprops/hayseed-dashboard/internal/scoring"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	// Build the fetch pipeline
	engine := scoring.NewEngine()
	monitor := fetch.NewMonitor()

	violations := fetch.NewViolationsFetcher(cfg, engine, monitor)
	lisPendens, err := fetch.NewLisPendensFetcher(cfg, monitor)
	if err != nil {
		log.Fatal("Failed to create lis pendens fetcher:", err)
	}
	taxBulletin := fetch.NewTaxBulletinFetcher(cfg, engine, monitor)

	store := cache.NewStore()
	job := refresh.NewJob([]fetch.Fetcher{violations, lisPendens, taxBulletin}, store, cfg)

	// Populate the cache before accepting traffic
	log.Println("Running startup refresh")
	job.Run(context.Background())

	// Schedule daily refreshes
	scheduler := refresh.NewScheduler(job, cfg)
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start refresh scheduler:", err)
	}
	defer scheduler.Stop()

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()
	r.Use(middleware.RequestLoggingMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(gin.Recovery())

	if proxies := cfg.GetTrustedProxies(); proxies != nil {
		if err := r.SetTrustedProxies(proxies); err != nil {
			log.Fatal("Failed to set trusted proxies:", err)
		}
	}

	deps := api.Dependencies{
		Store:      store,
		Monitor:    monitor,
		Job:        job,
		LisPendens: lisPendens,
	}
	if err := api.SetupRoutes(r, deps, cfg); err != nil {
		log.Fatal("Failed to setup routes:", err)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
