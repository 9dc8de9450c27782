package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/web"
)

func dashboardRouter(t *testing.T, store *cache.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := web.Templates()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(templates)
	handler := NewDashboardHandler(store)
	r.GET("/", handler.Dashboard)
	r.GET("/mobile", handler.Mobile)
	return r
}

func TestDashboardHandler_RendersSummaryAndRecords(t *testing.T) {
	router := dashboardRouter(t, seededStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()

	if !strings.Contains(body, "Hayseed Properties Dashboard") {
		t.Error("missing dashboard title")
	}
	if !strings.Contains(body, "1234 Main St, Louisville, KY 40211") {
		t.Error("missing top record address")
	}
	if !strings.Contains(body, "Structural Damage") {
		t.Error("missing violation type")
	}
	// Hotspot table covers the seeded ZIPs
	if !strings.Contains(body, "40211") || !strings.Contains(body, "40212") {
		t.Error("missing hotspot ZIPs")
	}
}

func TestDashboardHandler_SearchFilterNarrowsList(t *testing.T) {
	router := dashboardRouter(t, seededStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?search=oak", nil)
	router.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "5678 Oak Ave") {
		t.Error("matching record should render")
	}
	if strings.Contains(body, "1234 Main St") {
		t.Error("non-matching record should be filtered out")
	}
}

func TestDashboardHandler_MinScoreFilter(t *testing.T) {
	router := dashboardRouter(t, seededStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?min_score=9", nil)
	router.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "1234 Main St") {
		t.Error("score-10 record should survive min_score=9")
	}
	if strings.Contains(body, "5678 Oak Ave") {
		t.Error("score-8 record should be filtered out by min_score=9")
	}
}

func TestDashboardHandler_EmptyCacheShowsEmptyState(t *testing.T) {
	router := dashboardRouter(t, cache.NewStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?data_type=lis_pendens", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No data available") {
		t.Error("empty cache should render the empty-state message")
	}
}

func TestDashboardHandler_MobileShowsOnlyHighDistress(t *testing.T) {
	router := dashboardRouter(t, seededStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mobile", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()

	if !strings.Contains(body, "Hayseed Mobile") {
		t.Error("missing mobile title")
	}
	if !strings.Contains(body, "1234 Main St") || !strings.Contains(body, "5678 Oak Ave") {
		t.Error("high-distress records should render")
	}
	if strings.Contains(body, "Unknown") {
		t.Error("score-5 record should not appear in the mobile view")
	}
}
