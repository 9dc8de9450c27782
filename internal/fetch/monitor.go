package fetch

import (
	"sync"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

const maxRecentFailures = 50

// Monitor tracks fetch outcomes per source for the health endpoint
type Monitor struct {
	mu      sync.RWMutex
	sources map[models.Source]*sourceStats
	recent  []FailureRecord
}

type sourceStats struct {
	attempts            int64
	successes           int64
	failures            int64
	consecutiveFailures int64
	lastSuccess         time.Time
	lastFailure         time.Time
	lastRecordCount     int
}

// FailureRecord is one failed fetch attempt
type FailureRecord struct {
	Timestamp time.Time     `json:"timestamp"`
	Source    models.Source `json:"source"`
	Error     string        `json:"error"`
}

// SourceStatus is the per-source view exposed on /health
type SourceStatus struct {
	Attempts            int64      `json:"attempts"`
	Successes           int64      `json:"successes"`
	Failures            int64      `json:"failures"`
	ConsecutiveFailures int64      `json:"consecutive_failures"`
	LastSuccess         *time.Time `json:"last_success,omitempty"`
	LastFailure         *time.Time `json:"last_failure,omitempty"`
	LastRecordCount     int        `json:"last_record_count"`
}

// Status is the aggregate monitor view exposed on /health
type Status struct {
	Healthy        bool                           `json:"healthy"`
	Sources        map[models.Source]SourceStatus `json:"sources"`
	RecentFailures []FailureRecord                `json:"recent_failures"`
}

// NewMonitor creates a fetch monitor covering all known sources
func NewMonitor() *Monitor {
	sources := make(map[models.Source]*sourceStats, len(models.AllSources))
	for _, src := range models.AllSources {
		sources[src] = &sourceStats{}
	}
	return &Monitor{
		sources: sources,
		recent:  make([]FailureRecord, 0, maxRecentFailures),
	}
}

// RecordSuccess records a completed fetch and how many records it yielded
func (m *Monitor) RecordSuccess(src models.Source, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats(src)
	stats.attempts++
	stats.successes++
	stats.consecutiveFailures = 0
	stats.lastSuccess = time.Now()
	stats.lastRecordCount = count
}

// RecordFailure records a failed fetch attempt
func (m *Monitor) RecordFailure(src models.Source, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats(src)
	stats.attempts++
	stats.failures++
	stats.consecutiveFailures++
	stats.lastFailure = time.Now()

	m.recent = append(m.recent, FailureRecord{
		Timestamp: time.Now(),
		Source:    src,
		Error:     err.Error(),
	})
	if len(m.recent) > maxRecentFailures {
		m.recent = m.recent[1:]
	}
}

// GetStatus returns a copy of the current monitor state. The monitor is
// healthy while no source has failed three times in a row.
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := Status{
		Healthy:        true,
		Sources:        make(map[models.Source]SourceStatus, len(m.sources)),
		RecentFailures: append([]FailureRecord(nil), m.recent...),
	}

	for src, stats := range m.sources {
		view := SourceStatus{
			Attempts:            stats.attempts,
			Successes:           stats.successes,
			Failures:            stats.failures,
			ConsecutiveFailures: stats.consecutiveFailures,
			LastRecordCount:     stats.lastRecordCount,
		}
		if !stats.lastSuccess.IsZero() {
			t := stats.lastSuccess
			view.LastSuccess = &t
		}
		if !stats.lastFailure.IsZero() {
			t := stats.lastFailure
			view.LastFailure = &t
		}
		if stats.consecutiveFailures >= 3 {
			status.Healthy = false
		}
		status.Sources[src] = view
	}

	return status
}

func (m *Monitor) stats(src models.Source) *sourceStats {
	if stats, ok := m.sources[src]; ok {
		return stats
	}
	stats := &sourceStats{}
	m.sources[src] = stats
	return stats
}
