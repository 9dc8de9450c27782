package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/internal/scoring"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

const searchResultsHTML = `<html><body>
<table>
<tr><th>Grantor</th><th>Grantee</th><th>Legal Description</th><th>Filed</th></tr>
<tr><td>SMITH JOHN</td><td>FIRST BANK</td><td>LOT A 2200 BANK ST LOUISVILLE KY 40212</td><td>01/15/2025</td></tr>
<tr><td>DOE JANE</td><td>MIDLAND TRUST</td><td>PARCEL 7 BLOCK C SUBDIVISION PLAT 9</td><td>02/03/2025</td></tr>
<tr><td colspan="4">no further results</td></tr>
</table>
</body></html>`

func newDeedsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "abc123"})
			fmt.Fprint(w, `<html><body><form method="POST"></form></body></html>`)
		case http.MethodPost:
			if cookie, err := r.Cookie("session_id"); err != nil || cookie.Value != "abc123" {
				t.Error("POST arrived without the session cookie from the initial GET")
			}
			if got := r.FormValue("instrument_type"); got != "LIS PENDENS" {
				t.Errorf("instrument_type = %q, want LIS PENDENS", got)
			}
			if r.FormValue("start_date") == "" || r.FormValue("end_date") == "" {
				t.Error("expected a date range in the form submission")
			}
			fmt.Fprint(w, searchResultsHTML)
		}
	}))
}

func newLisPendensFetcher(t *testing.T, endpoint string) *LisPendensFetcher {
	t.Helper()
	cfg := &config.Config{DeedsSearchURL: endpoint, LisPendensWindow: 365}
	fetcher, err := NewLisPendensFetcher(cfg, NewMonitor())
	if err != nil {
		t.Fatalf("failed to create fetcher: %v", err)
	}
	return fetcher
}

func TestLisPendensFetcher_Fetch(t *testing.T) {
	server := newDeedsServer(t)
	defer server.Close()

	fetcher := newLisPendensFetcher(t, server.URL)
	records, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 filings (header and short rows skipped), got %d", len(records))
	}

	first := records[0]
	if first.Grantor != "SMITH JOHN" || first.Grantee != "FIRST BANK" {
		t.Errorf("unexpected parties: %q / %q", first.Grantor, first.Grantee)
	}
	if first.Address != "2200 BANK ST" {
		t.Errorf("address from legal description = %q, want street match", first.Address)
	}
	if first.Zip != "40212" {
		t.Errorf("zip = %q, want 40212", first.Zip)
	}
	if first.Score != scoring.LisPendensScore {
		t.Errorf("filing score = %d, want %d", first.Score, scoring.LisPendensScore)
	}
	if first.FiledDate != "01/15/2025" {
		t.Errorf("filed date = %q", first.FiledDate)
	}

	// No street pattern in the second legal description
	second := records[1]
	if second.Address != "DOE JANE property" {
		t.Errorf("fallback address = %q, want grantor property", second.Address)
	}
}

func TestLisPendensFetcher_FetchRangeUsesGivenDates(t *testing.T) {
	var gotStart, gotEnd string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			gotStart = r.FormValue("start_date")
			gotEnd = r.FormValue("end_date")
			fmt.Fprint(w, searchResultsHTML)
			return
		}
		fmt.Fprint(w, "<html></html>")
	}))
	defer server.Close()

	fetcher := newLisPendensFetcher(t, server.URL)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	if _, err := fetcher.FetchRange(context.Background(), start, end); err != nil {
		t.Fatalf("FetchRange failed: %v", err)
	}

	if gotStart != "01/01/2025" || gotEnd != "03/31/2025" {
		t.Errorf("date range = %q..%q, want 01/01/2025..03/31/2025", gotStart, gotEnd)
	}
}

func TestLisPendensFetcher_NoResultsTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>Search unavailable</p></body></html>")
	}))
	defer server.Close()

	fetcher := newLisPendensFetcher(t, server.URL)
	if _, err := fetcher.Fetch(context.Background()); err == nil {
		t.Fatal("expected an error when the response has no table")
	}
}

func TestDeriveAddress(t *testing.T) {
	testCases := []struct {
		name     string
		legal    string
		grantor  string
		expected string
	}{
		{"Street match", "LOT B 910 MARKET ST BLOCK 2", "ACME LLC", "910 MARKET ST"},
		{"Avenue match", "5678 OAK AVE", "ACME LLC", "5678 OAK AVE"},
		{"No match falls back to grantor", "PARCEL 12 PLAT BOOK 9", "ACME LLC", "ACME LLC property"},
		{"Empty legal description", "", "SMITH JOHN", "SMITH JOHN property"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveAddress(tc.legal, tc.grantor); got != tc.expected {
				t.Errorf("deriveAddress(%q, %q) = %q, want %q", tc.legal, tc.grantor, got, tc.expected)
			}
		})
	}
}
