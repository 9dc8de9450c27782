// Package web builds plain view models from cached records and renders them
// through html/template. Fetch, cache and scoring logic stay free of
// presentation concerns.
package web

import (
	"embed"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	// DesktopMaxRows caps the desktop dashboard list
	DesktopMaxRows = 100
	// MobileMaxRows caps the condensed mobile list
	MobileMaxRows = 15
	// HighDistressThreshold marks a record as high priority
	HighDistressThreshold = 8
)

// Templates parses the embedded dashboard templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"scoreClass": ScoreClass,
	}).ParseFS(templatesFS, "templates/*.tmpl")
}

// ScoreClass maps a distress score onto the badge color used by both layouts
func ScoreClass(score int) string {
	switch {
	case score >= 9:
		return "red"
	case score >= 7:
		return "orange"
	default:
		return "yellow"
	}
}

// ZipCount is one hotspot row: a ZIP code and how many records fall in it
type ZipCount struct {
	Zip   string
	Count int
}

// DashboardView is everything the desktop template needs
type DashboardView struct {
	Source            models.Source
	Search            string
	MinScore          int
	MaxScore          int
	Total             int
	HighDistress      int
	PotentiallyVacant int
	Hotspots          []ZipCount
	Records           []models.Record
	LastUpdated       time.Time
	NextRefresh       time.Time
}

// MobileView is everything the condensed template needs
type MobileView struct {
	Source      models.Source
	Critical    int
	Total       int
	Records     []models.Record
	LastUpdated time.Time
}

// Filter narrows records to those matching an optional case-insensitive
// substring search (over address and violation type) and an optional score
// range. The input slice is never mutated; order is preserved.
func Filter(records []models.Record, search string, minScore, maxScore int) []models.Record {
	needle := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Record, 0, len(records))
	for _, r := range records {
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Address), needle) &&
			!strings.Contains(strings.ToLower(r.ViolationType), needle) {
			continue
		}
		if minScore > 0 && r.Score < minScore {
			continue
		}
		if maxScore > 0 && r.Score > maxScore {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Summarize computes the dashboard's headline counts over one source's
// full record set
func Summarize(records []models.Record) (total, highDistress, potentiallyVacant int) {
	total = len(records)
	for _, r := range records {
		if r.Score >= HighDistressThreshold {
			highDistress++
		}
		lowered := strings.ToLower(r.ViolationType)
		if strings.Contains(lowered, "vacant") || strings.Contains(lowered, "abandoned") {
			potentiallyVacant++
		}
	}
	return total, highDistress, potentiallyVacant
}

// TopZips returns the n most frequent ZIP codes among the records. Records
// with no extracted ZIP are excluded. Ties break by ZIP for stable output.
func TopZips(records []models.Record, n int) []ZipCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Zip != "" {
			counts[r.Zip]++
		}
	}

	zips := make([]ZipCount, 0, len(counts))
	for zip, count := range counts {
		zips = append(zips, ZipCount{Zip: zip, Count: count})
	}
	sort.Slice(zips, func(i, j int) bool {
		if zips[i].Count != zips[j].Count {
			return zips[i].Count > zips[j].Count
		}
		return zips[i].Zip < zips[j].Zip
	})

	if len(zips) > n {
		zips = zips[:n]
	}
	return zips
}

// BuildDashboard assembles the desktop view for one source from a cached
// snapshot. Summary counts and hotspots cover the unfiltered set; the
// record list is filtered and capped.
func BuildDashboard(snapshot *models.Snapshot, source models.Source, search string, minScore, maxScore int) DashboardView {
	all := snapshot.Records[source]
	total, high, vacant := Summarize(all)

	filtered := Filter(all, search, minScore, maxScore)
	if len(filtered) > DesktopMaxRows {
		filtered = filtered[:DesktopMaxRows]
	}

	return DashboardView{
		Source:            source,
		Search:            search,
		MinScore:          minScore,
		MaxScore:          maxScore,
		Total:             total,
		HighDistress:      high,
		PotentiallyVacant: vacant,
		Hotspots:          TopZips(all, 5),
		Records:           filtered,
		LastUpdated:       snapshot.LastUpdated[source],
		NextRefresh:       snapshot.NextRefresh,
	}
}

// BuildMobile assembles the condensed field view: high-distress records
// only, capped for a phone screen
func BuildMobile(snapshot *models.Snapshot, source models.Source) MobileView {
	all := snapshot.Records[source]
	_, high, _ := Summarize(all)

	critical := Filter(all, "", HighDistressThreshold, 0)
	if len(critical) > MobileMaxRows {
		critical = critical[:MobileMaxRows]
	}

	return MobileView{
		Source:      source,
		Critical:    high,
		Total:       len(all),
		Records:     critical,
		LastUpdated: snapshot.LastUpdated[source],
	}
}
