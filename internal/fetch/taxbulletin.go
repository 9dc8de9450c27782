package fetch

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hayseedprops/hayseed-dashboard/internal/errors"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
	"github.com/hayseedprops/hayseed-dashboard/internal/scoring"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
	"github.com/ledongthuc/pdf"
)

const (
	taxBulletinTimeout = 90 * time.Second
	maxBulletinPages   = 10
	maxBulletinRows    = 100
	minAddressLength   = 10
)

var (
	dollarAmountRegex = regexp.MustCompile(`\$\s?([\d,]+(?:\.\d{2})?)`)
	yearsOwedRegex    = regexp.MustCompile(`(?i)(\d+)\s*(?:YRS?|YEARS?)`)
)

// TaxBulletinFetcher downloads the county's tax-delinquency PDF bulletin and
// scrapes property lines out of its unstructured text. Extraction is
// best-effort by design: lines that don't look like a property entry are
// dropped, never surfaced as errors.
type TaxBulletinFetcher struct {
	client      *http.Client
	bulletinURL string
	engine      *scoring.Engine
	monitor     *Monitor
}

// NewTaxBulletinFetcher creates a tax-bulletin fetcher from configuration
func NewTaxBulletinFetcher(cfg *config.Config, engine *scoring.Engine, monitor *Monitor) *TaxBulletinFetcher {
	return &TaxBulletinFetcher{
		client:      newHTTPClient(taxBulletinTimeout),
		bulletinURL: cfg.TaxBulletinURL,
		engine:      engine,
		monitor:     monitor,
	}
}

// Source identifies this fetcher's cache key
func (f *TaxBulletinFetcher) Source() models.Source {
	return models.SourceTaxDelinquent
}

// Fetch downloads the bulletin and extracts delinquent-property records from
// the first pages of text
func (f *TaxBulletinFetcher) Fetch(ctx context.Context) ([]models.Record, error) {
	body, err := getBody(ctx, f.client, f.bulletinURL)
	if err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.Network(string(f.Source()), "bulletin download failed", err)
	}

	lines, err := extractBulletinLines(body)
	if err != nil {
		f.monitor.RecordFailure(f.Source(), err)
		return nil, errors.Parse(string(f.Source()), "failed to extract bulletin text", err)
	}

	var records []models.Record
	for _, line := range lines {
		if len(records) >= maxBulletinRows {
			break
		}
		if record, ok := f.parseLine(line); ok {
			records = append(records, record)
		}
	}

	f.monitor.RecordSuccess(f.Source(), len(records))
	return records, nil
}

// extractBulletinLines pulls text rows from up to the first ten pages
func extractBulletinLines(raw []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, err
	}

	pages := reader.NumPage()
	if pages > maxBulletinPages {
		pages = maxBulletinPages
	}

	var lines []string
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue // skip unreadable pages, keep what we have
		}
		for _, row := range rows {
			var parts []string
			for _, text := range row.Content {
				parts = append(parts, text.S)
			}
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	return lines, nil
}

// parseLine turns one bulletin text line into a record when it carries both
// a dollar amount and a plausible street address
func (f *TaxBulletinFetcher) parseLine(line string) (models.Record, bool) {
	amountMatch := dollarAmountRegex.FindStringSubmatch(line)
	if amountMatch == nil {
		return models.Record{}, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(amountMatch[1], ",", ""), 64)
	if err != nil {
		return models.Record{}, false
	}

	address := strings.TrimSpace(streetAddressRegex.FindString(line))
	if len(address) < minAddressLength {
		return models.Record{}, false
	}

	years := 0
	if yearsMatch := yearsOwedRegex.FindStringSubmatch(line); yearsMatch != nil {
		years, _ = strconv.Atoi(yearsMatch[1])
	}

	return models.Record{
		ID:              uuid.NewString(),
		Source:          models.SourceTaxDelinquent,
		Address:         address,
		Zip:             models.ExtractZip(line),
		Score:           f.engine.ScoreTaxDelinquency(years),
		AmountOwed:      amount,
		YearsDelinquent: years,
	}, true
}
