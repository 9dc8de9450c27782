package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hayseedprops/hayseed-dashboard/internal/errors"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
	"github.com/hayseedprops/hayseed-dashboard/internal/scoring"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

const violationsTimeout = 30 * time.Second

// ViolationsFetcher pulls code-violation cases from the municipal
// feature-query API (JSON features[].attributes shape)
type ViolationsFetcher struct {
	client     *http.Client
	endpoint   string
	windowDays int
	maxRows    int
	engine     *scoring.Engine
	monitor    *Monitor
}

// NewViolationsFetcher creates a violations fetcher from configuration
func NewViolationsFetcher(cfg *config.Config, engine *scoring.Engine, monitor *Monitor) *ViolationsFetcher {
	return &ViolationsFetcher{
		client:     newHTTPClient(violationsTimeout),
		endpoint:   cfg.ViolationsURL,
		windowDays: cfg.ViolationsWindow,
		maxRows:    cfg.ViolationsMaxRows,
		engine:     engine,
		monitor:    monitor,
	}
}

// Source identifies this fetcher's cache key
func (f *ViolationsFetcher) Source() models.Source {
	return models.SourceViolations
}

// featureResponse is the subset of the feature-query payload we consume.
// Attribute keys and types vary by layer, so attributes stay loosely typed.
type featureResponse struct {
	Features []struct {
		Attributes map[string]interface{} `json:"attributes"`
	} `json:"features"`
}

// Fetch requests the trailing window of violation cases, normalizes and
// scores them, and returns the set sorted descending by score (stable, so
// equal scores keep API order)
func (f *ViolationsFetcher) Fetch(ctx context.Context) ([]models.Record, error) {
	query := url.Values{}
	query.Set("where", f.whereClause())
	query.Set("outFields", "*")
	query.Set("f", "json")
	query.Set("resultRecordCount", strconv.Itoa(f.maxRows))

	body, err := getBody(ctx, f.client, f.endpoint+"?"+query.Encode())
	if err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.Network(string(f.Source()), "feature query failed", err)
	}

	var payload featureResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.BadResponse(string(f.Source()), "feature query returned malformed JSON", err)
	}

	records := make([]models.Record, 0, len(payload.Features))
	for _, feature := range payload.Features {
		records = append(records, f.normalize(feature.Attributes))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})

	f.monitor.RecordSuccess(f.Source(), len(records))
	return records, nil
}

func (f *ViolationsFetcher) whereClause() string {
	if f.windowDays <= 0 {
		return "1=1"
	}
	since := time.Now().AddDate(0, 0, -f.windowDays).Format("2006-01-02")
	return fmt.Sprintf("INSPECTION_DATE >= DATE '%s'", since)
}

// normalize maps one feature's loose attributes onto a Record. Absent or
// malformed fields fall back to neutral values rather than failing the row.
func (f *ViolationsFetcher) normalize(attrs map[string]interface{}) models.Record {
	address := stringAttr(attrs, "ADDRESS", "PROPERTY_ADDRESS", "FULL_ADDRESS", "address")
	violationType := stringAttr(attrs, "VIOLATION", "VIOLATION_TYPE", "CASE_TYPE", "violation")
	status := stringAttr(attrs, "STATUS", "CASE_STATUS", "status")

	record := models.Record{
		ID:             uuid.NewString(),
		Source:         models.SourceViolations,
		Address:        address,
		Zip:            models.ExtractZip(address),
		ViolationType:  violationType,
		CaseNumber:     stringAttr(attrs, "CASE_NUMBER", "CASE_NO", "CASE_ID", "case_number"),
		Status:         status,
		InspectionDate: dateAttr(attrs, "INSPECTION_DATE", "INSP_DATE", "DATE_INSPECTED"),
	}
	record.Score = f.engine.ScoreViolation(violationType, status)
	return record
}

// stringAttr returns the first present, non-empty key as a string,
// defaulting to "Unknown"
func stringAttr(attrs map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if raw, ok := attrs[key]; ok {
			if s, ok := raw.(string); ok && s != "" {
				return s
			}
		}
	}
	return "Unknown"
}

// dateAttr formats an epoch-milliseconds or string date attribute,
// defaulting to "" when absent
func dateAttr(attrs map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		raw, ok := attrs[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case float64:
			if v > 0 {
				return time.UnixMilli(int64(v)).UTC().Format("2006-01-02")
			}
		case string:
			if v != "" {
				return v
			}
		}
	}
	return ""
}
