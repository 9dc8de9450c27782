package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hayseedprops/hayseed-dashboard/internal/errors"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
	"github.com/hayseedprops/hayseed-dashboard/internal/scoring"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

const (
	lisPendensTimeout = 60 * time.Second
	maxFilingRows     = 100
)

// streetAddressRegex pulls a street address (house number through a known
// suffix) out of a filing's free-text legal description
var streetAddressRegex = regexp.MustCompile(`(?i)\b\d+\s+[A-Z0-9 .'-]+?\s(?:ST|AVE|RD|DR|LN|CT|BLVD|WAY|PL|TER|CIR|PKWY|HWY)\b`)

// LisPendensFetcher scrapes pending-litigation filings from the county
// deeds-search site. The site requires a GET to establish a session cookie
// before the search form POST is accepted.
type LisPendensFetcher struct {
	client     *resty.Client
	searchURL  string
	windowDays int
	monitor    *Monitor
}

// NewLisPendensFetcher creates a deeds-search fetcher from configuration
func NewLisPendensFetcher(cfg *config.Config, monitor *Monitor) (*LisPendensFetcher, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	client := resty.New()
	client.SetCookieJar(jar)
	client.SetTimeout(lisPendensTimeout)
	client.SetHeader("User-Agent", userAgent)

	return &LisPendensFetcher{
		client:     client,
		searchURL:  cfg.DeedsSearchURL,
		windowDays: cfg.LisPendensWindow,
		monitor:    monitor,
	}, nil
}

// Source identifies this fetcher's cache key
func (f *LisPendensFetcher) Source() models.Source {
	return models.SourceLisPendens
}

// Fetch searches the default trailing window of filings
func (f *LisPendensFetcher) Fetch(ctx context.Context) ([]models.Record, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -f.windowDays)
	return f.FetchRange(ctx, start, end)
}

// FetchRange searches filings in an explicit date range. Used by the
// manual-scrape endpoint with caller-supplied dates.
func (f *LisPendensFetcher) FetchRange(ctx context.Context, start, end time.Time) ([]models.Record, error) {
	// Establish the search session before posting the form
	if _, err := f.client.R().SetContext(ctx).Get(f.searchURL); err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.Network(string(f.Source()), "failed to open search session", err)
	}

	res, err := f.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"instrument_type": "LIS PENDENS",
			"start_date":      start.Format("01/02/2006"),
			"end_date":        end.Format("01/02/2006"),
		}).
		Post(f.searchURL)
	if err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.Network(string(f.Source()), "search form submission failed", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.Parse(string(f.Source()), "failed to parse search results HTML", err)
	}

	records, err := f.parseResults(doc)
	if err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, err
	}

	f.monitor.RecordSuccess(f.Source(), len(records))
	return records, nil
}

// parseResults reads the first results table: one filing per row, columns
// 0-3 = grantor / grantee / legal description / filed date
func (f *LisPendensFetcher) parseResults(doc *goquery.Document) ([]models.Record, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.Parse(string(f.Source()), "no results table in response", nil)
	}

	var records []models.Record
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true // header row
		}
		if len(records) >= maxFilingRows {
			return false
		}

		cells := row.Find("td")
		if cells.Length() < 4 {
			return true
		}

		grantor := cellText(cells, 0)
		grantee := cellText(cells, 1)
		legal := cellText(cells, 2)
		filed := cellText(cells, 3)

		address := deriveAddress(legal, grantor)
		records = append(records, models.Record{
			ID:               uuid.NewString(),
			Source:           models.SourceLisPendens,
			Address:          address,
			Zip:              models.ExtractZip(legal),
			Score:            scoring.LisPendensScore,
			Grantor:          grantor,
			Grantee:          grantee,
			LegalDescription: legal,
			FiledDate:        filed,
		})
		return true
	})

	return records, nil
}

func cellText(cells *goquery.Selection, index int) string {
	return strings.TrimSpace(cells.Eq(index).Text())
}

// deriveAddress extracts a street address from the legal description,
// falling back to the grantor's name when no street pattern matches
func deriveAddress(legalDescription, grantor string) string {
	if match := streetAddressRegex.FindString(legalDescription); match != "" {
		return strings.TrimSpace(match)
	}
	return fmt.Sprintf("%s property", grantor)
}
