package refresh

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

// Scheduler fires the refresh job at the configured wall-clock times each
// day. One cycle runs at a time; a slow cycle delays the next firing but
// never overlaps it.
type Scheduler struct {
	job       *Job
	times     []config.RefreshTime
	isRunning bool
	stopChan  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// NewScheduler creates a scheduler for the given job
func NewScheduler(job *Job, cfg *config.Config) *Scheduler {
	return &Scheduler{
		job:      job,
		times:    cfg.GetRefreshTimes(),
		stopChan: make(chan struct{}),
	}
}

// Start launches the background scheduling loop
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	s.isRunning = true

	s.wg.Add(1)
	go s.loop()

	log.Printf("refresh scheduler started, firing daily at %d configured times", len(s.times))
	return nil
}

// Stop halts the scheduling loop and waits for it to exit
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
	s.isRunning = false
	log.Println("refresh scheduler stopped")
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	for {
		next := NextRun(time.Now(), s.times)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			log.Printf("scheduled refresh firing (planned for %s)", next.Format("15:04"))
			s.job.Run(context.Background())
		}
	}
}
