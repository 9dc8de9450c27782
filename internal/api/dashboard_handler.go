package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
	"github.com/hayseedprops/hayseed-dashboard/internal/web"
)

// DashboardHandler serves the desktop and mobile HTML views from the cache
type DashboardHandler struct {
	store *cache.Store
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(store *cache.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Dashboard renders the desktop view with optional search and score filters
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	source := models.ParseSource(c.Query("data_type"))
	search := c.Query("search")
	minScore := intQuery(c, "min_score")
	maxScore := intQuery(c, "max_score")

	view := web.BuildDashboard(h.store.Current(), source, search, minScore, maxScore)
	c.HTML(http.StatusOK, "dashboard.html.tmpl", view)
}

// Mobile renders the condensed high-distress view
func (h *DashboardHandler) Mobile(c *gin.Context) {
	source := models.ParseSource(c.Query("data_type"))

	view := web.BuildMobile(h.store.Current(), source)
	c.HTML(http.StatusOK, "mobile.html.tmpl", view)
}

// intQuery parses an integer query parameter, treating absent or malformed
// values as unset
func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
