package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/fetch"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

// HealthHandler reports process health, cached record counts and refresh
// timing
type HealthHandler struct {
	store   *cache.Store
	monitor *fetch.Monitor
}

// NewHealthHandler creates a health handler
func NewHealthHandler(store *cache.Store, monitor *fetch.Monitor) *HealthHandler {
	return &HealthHandler{store: store, monitor: monitor}
}

// Health returns JSON status for the process and every source
func (h *HealthHandler) Health(c *gin.Context) {
	snapshot := h.store.Current()
	fetchStatus := h.monitor.GetStatus()

	status := "healthy"
	if !fetchStatus.Healthy {
		status = "degraded"
	}

	counts := make(map[models.Source]int, len(models.AllSources))
	lastUpdated := make(map[models.Source]*time.Time, len(models.AllSources))
	for _, src := range models.AllSources {
		counts[src] = snapshot.Count(src)
		if t, ok := snapshot.LastUpdated[src]; ok {
			stamped := t
			lastUpdated[src] = &stamped
		} else {
			lastUpdated[src] = nil
		}
	}

	var nextRefresh *time.Time
	if !snapshot.NextRefresh.IsZero() {
		nextRefresh = &snapshot.NextRefresh
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        status,
		"counts":        counts,
		"last_updated":  lastUpdated,
		"next_refresh":  nextRefresh,
		"fetch_sources": fetchStatus.Sources,
	})
}
