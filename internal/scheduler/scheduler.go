package scheduler

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
)

// Refresher exports a list of tickers and returns the ones that failed.
type Refresher interface {
	Refresh(tickers []string) []string
}

// Scheduler re-exports the configured tickers on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Refresher Refresher
	Tickers   []string

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// NewScheduler creates a new Scheduler. Cron specs carry a seconds field.
func NewScheduler(r Refresher, tickers []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Refresher: r,
		Tickers:   tickers,
	}
}

// Register adds the refresh task under spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running refreshes, including
// those started by RunAsync, to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.wg.Wait()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

// RunAsync starts the refresh task in the background. Stop waits for it.
func (s *Scheduler) RunAsync() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.refreshTask()
	}()
}

func (s *Scheduler) refreshTask() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("[WARN] previous refresh still running, skipping")
		return
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	log.Printf("[INFO] refreshing %d tickers", len(s.Tickers))
	failed := s.Refresher.Refresh(s.Tickers)
	if len(failed) > 0 {
		log.Printf("[WARN] refresh failed for: %s", strings.Join(failed, ", "))
		return
	}
	log.Println("[INFO] refresh complete")
}
