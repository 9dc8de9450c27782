package models

import (
	"regexp"
	"strings"
	"time"
)

// Source identifies which external feed a record came from
type Source string

const (
	SourceViolations    Source = "violations"
	SourceLisPendens    Source = "lis_pendens"
	SourceTaxDelinquent Source = "tax_delinquent"
)

// AllSources lists every feed in refresh order
var AllSources = []Source{SourceViolations, SourceLisPendens, SourceTaxDelinquent}

// ParseSource maps a user-supplied data_type value onto a known source,
// defaulting to violations for anything unrecognized
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceLisPendens:
		return SourceLisPendens
	case SourceTaxDelinquent:
		return SourceTaxDelinquent
	default:
		return SourceViolations
	}
}

// Record is the normalized shape shared by all three feeds. A record is
// scored once at fetch time and never mutated after it enters the cache.
type Record struct {
	ID      string `json:"id"`
	Source  Source `json:"source"`
	Address string `json:"address"`
	Zip     string `json:"zip"`
	Score   int    `json:"score"`

	// Code violations
	ViolationType  string `json:"violation_type,omitempty"`
	CaseNumber     string `json:"case_number,omitempty"`
	Status         string `json:"status,omitempty"`
	InspectionDate string `json:"inspection_date,omitempty"`

	// Lis pendens filings
	Grantor          string `json:"grantor,omitempty"`
	Grantee          string `json:"grantee,omitempty"`
	LegalDescription string `json:"legal_description,omitempty"`
	FiledDate        string `json:"filed_date,omitempty"`

	// Tax delinquencies
	AmountOwed      float64 `json:"amount_owed,omitempty"`
	YearsDelinquent int     `json:"years_delinquent,omitempty"`
}

var zipRegex = regexp.MustCompile(`\b(\d{5})\b`)

// ExtractZip pulls a best-effort 5-digit ZIP out of a free-text address.
// The last 5-digit group wins so house numbers don't shadow the ZIP.
// Returns "" when the address carries no ZIP.
func ExtractZip(address string) string {
	matches := zipRegex.FindAllString(address, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// Snapshot is one complete refresh cycle's view of the world. Snapshots are
// immutable once published; the cache swaps whole snapshots so readers never
// see a half-replaced state.
type Snapshot struct {
	Records     map[Source][]Record  `json:"records"`
	LastUpdated map[Source]time.Time `json:"last_updated"`
	RefreshedAt time.Time            `json:"refreshed_at"`
	NextRefresh time.Time            `json:"next_refresh"`
}

// EmptySnapshot returns a snapshot with zero records for every source
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Records:     map[Source][]Record{},
		LastUpdated: map[Source]time.Time{},
	}
}

// Count returns the number of cached records for one source
func (s *Snapshot) Count(src Source) int {
	return len(s.Records[src])
}
