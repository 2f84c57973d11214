package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sony/gobreaker"
)

// BreakerMonitor exposes a circuit breaker for periodic reporting.
type BreakerMonitor interface {
	BreakerName() string
	BreakerState() gobreaker.State
	Counts() gobreaker.Counts
}

// Scheduler periodically logs the state of the upstream circuit breakers.
type Scheduler struct {
	scheduler *gocron.Scheduler
	monitors  []BreakerMonitor
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, monitors ...BreakerMonitor) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		monitors:  monitors,
		interval:  interval,
	}
}

// Start schedules the report job and starts the underlying scheduler.
// A non-positive interval disables reporting.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: breaker reporting disabled")
		return nil
	}
	if len(s.monitors) == 0 {
		log.Println("scheduler: no breakers configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.Report)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Report logs one line per monitored breaker.
func (s *Scheduler) Report() {
	for _, m := range s.monitors {
		c := m.Counts()
		log.Printf("scheduler: breaker %s state=%s requests=%d successes=%d failures=%d consecutive_failures=%d",
			m.BreakerName(), m.BreakerState(), c.Requests, c.TotalSuccesses, c.TotalFailures, c.ConsecutiveFailures)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
