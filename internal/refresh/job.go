package refresh

import (
	"context"
	"log"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/internal/cache"
	"github.com/hayseedprops/hayseed-dashboard/internal/fetch"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

// Job runs every fetcher sequentially, builds one complete snapshot and
// publishes it to the cache in a single swap. Per-source failures are
// absorbed here via the configured fallback policy; they never abort the
// cycle or reach request handlers.
type Job struct {
	fetchers     []fetch.Fetcher
	store        *cache.Store
	times        []config.RefreshTime
	demoFallback bool
}

// NewJob creates a refresh job over the given fetchers
func NewJob(fetchers []fetch.Fetcher, store *cache.Store, cfg *config.Config) *Job {
	return &Job{
		fetchers:     fetchers,
		store:        store,
		times:        cfg.GetRefreshTimes(),
		demoFallback: cfg.DemoFallbackEnabled(),
	}
}

// Run executes one full refresh cycle. All sources share the cycle's start
// time as their last-updated stamp. The built snapshot is returned for
// callers that want counts.
func (j *Job) Run(ctx context.Context) *models.Snapshot {
	start := time.Now()
	snapshot := models.EmptySnapshot()
	snapshot.RefreshedAt = start
	snapshot.NextRefresh = NextRun(start, j.times)

	for _, fetcher := range j.fetchers {
		src := fetcher.Source()
		records, err := fetcher.Fetch(ctx)
		if err != nil {
			records = j.fallback(src)
			log.Printf("refresh: %s fetch failed, serving %d fallback records: %v", src, len(records), err)
		} else {
			log.Printf("refresh: %s returned %d records", src, len(records))
		}
		snapshot.Records[src] = records
		snapshot.LastUpdated[src] = start
	}

	j.store.Publish(snapshot)
	return snapshot
}

func (j *Job) fallback(src models.Source) []models.Record {
	if j.demoFallback {
		return fetch.DemoRecords(src)
	}
	return []models.Record{}
}

// NextRun returns the soonest configured wall-clock time strictly after now,
// or the earliest configured time tomorrow when none remain today
func NextRun(now time.Time, times []config.RefreshTime) time.Time {
	var next time.Time
	for _, rt := range times {
		candidate := rt.At(now)
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		if next.IsZero() || candidate.Before(next) {
			next = candidate
		}
	}
	return next
}
