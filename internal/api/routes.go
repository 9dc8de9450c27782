package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/auth"
	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/fetch"
	"github.com/hayseedprops/hayseed-dashboard/internal/refresh"
	"github.com/hayseedprops/hayseed-dashboard/internal/web"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

// Dependencies carries the shared components the routes need
type Dependencies struct {
	Store      *cache.Store
	Monitor    *fetch.Monitor
	Job        *refresh.Job
	LisPendens *fetch.LisPendensFetcher
}

// SetupRoutes configures templates and all HTTP routes
func SetupRoutes(r *gin.Engine, deps Dependencies, cfg *config.Config) error {
	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	dashboardHandler := NewDashboardHandler(deps.Store)
	exportHandler := NewExportHandler(deps.Store)
	healthHandler := NewHealthHandler(deps.Store, deps.Monitor)
	authHandler := NewAuthHandler(cfg)
	scrapeHandler := NewScrapeHandler(deps.LisPendens, deps.Job)

	// Public dashboard surface
	r.GET("/", dashboardHandler.Dashboard)
	r.GET("/mobile", dashboardHandler.Mobile)
	r.GET("/export", exportHandler.Export)
	r.GET("/health", healthHandler.Health)

	r.POST("/api/v1/auth/login", authHandler.Login)

	// Admin surface
	protected := r.Group("/")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	{
		protected.GET("/manual-scrape", scrapeHandler.ManualScrape)
		protected.POST("/api/v1/refresh", scrapeHandler.TriggerRefresh)
	}

	return nil
}
