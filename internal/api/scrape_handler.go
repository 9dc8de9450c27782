package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/fetch"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
	"github.com/hayseedprops/hayseed-dashboard/internal/refresh"
)

const manualScrapeTimeout = 90 * time.Second

// ScrapeHandler exposes the admin endpoints: an ad hoc lis-pendens search
// with a caller-supplied date range, and an immediate refresh trigger. Both
// sit behind JWT middleware.
type ScrapeHandler struct {
	lisPendens *fetch.LisPendensFetcher
	job        *refresh.Job
}

// NewScrapeHandler creates a scrape handler
func NewScrapeHandler(lisPendens *fetch.LisPendensFetcher, job *refresh.Job) *ScrapeHandler {
	return &ScrapeHandler{lisPendens: lisPendens, job: job}
}

// ManualScrape runs a one-off lis-pendens search. Results are returned as
// JSON and never written to the cache.
func (h *ScrapeHandler) ManualScrape(c *gin.Context) {
	end := time.Now()
	start := end.AddDate(-1, 0, 0)

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		end = parsed
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date is before start_date"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), manualScrapeTimeout)
	defer cancel()

	records, err := h.lisPendens.FetchRange(ctx, start, end)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Lis pendens search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":     models.SourceLisPendens,
		"start_date": start.Format("2006-01-02"),
		"end_date":   end.Format("2006-01-02"),
		"count":      len(records),
		"records":    records,
	})
}

// TriggerRefresh runs a full refresh cycle immediately and reports the new
// per-source counts
func (h *ScrapeHandler) TriggerRefresh(c *gin.Context) {
	snapshot := h.job.Run(c.Request.Context())

	counts := make(map[models.Source]int, len(models.AllSources))
	for _, src := range models.AllSources {
		counts[src] = snapshot.Count(src)
	}

	c.JSON(http.StatusOK, gin.H{
		"refreshed_at": snapshot.RefreshedAt,
		"next_refresh": snapshot.NextRefresh,
		"counts":       counts,
	})
}
