package scoring

import "strings"

// Engine assigns heuristic distress scores to raw source attributes
type Engine struct{}

// NewEngine creates a new scoring engine instance
func NewEngine() *Engine {
	return &Engine{}
}

const (
	baseScore = 5
	maxScore  = 10

	// LisPendensScore applies uniformly to pending-litigation filings
	LisPendensScore = 8
)

// keywordGroup maps a set of violation keywords to a score. Groups are
// evaluated in order and the first match wins; rules never combine.
type keywordGroup struct {
	keywords []string
	score    int
}

var violationGroups = []keywordGroup{
	{[]string{"structural", "unsafe", "condemned", "collapse", "foundation"}, 9},
	{[]string{"fire", "electrical", "hazard", "health", "mold"}, 8},
	{[]string{"overgrown", "trash", "debris", "vacant", "abandoned"}, 6},
	{[]string{"plumbing", "roof", "exterior"}, 5},
}

var openStatuses = []string{"open", "active", "pending"}

// ScoreViolation scores a code-violation record from its violation text and
// case status. Matching is case-insensitive substring search; an open-looking
// status adds one point, capped at 10. Absent input lands on the base score.
func (e *Engine) ScoreViolation(violationType, status string) int {
	score := baseScore

	lowered := strings.ToLower(violationType)
	for _, group := range violationGroups {
		if containsAny(lowered, group.keywords) {
			score = group.score
			break
		}
	}

	if containsAny(strings.ToLower(status), openStatuses) {
		score++
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// ScoreTaxDelinquency scores a tax record by how long the bill has gone
// unpaid: 5 plus one point per delinquent year, capped at 9.
func (e *Engine) ScoreTaxDelinquency(yearsDelinquent int) int {
	if yearsDelinquent < 0 {
		yearsDelinquent = 0
	}
	score := baseScore + yearsDelinquent
	if score > 9 {
		score = 9
	}
	return score
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
