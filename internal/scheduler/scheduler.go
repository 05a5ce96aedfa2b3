// Package scheduler manages background jobs on cron schedules.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job.
type Job interface {
	Run() error
	Name() string
}

// Scheduler wraps a cron runner and logs job outcomes.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a new scheduler.
func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

// AddJob registers a job with a cron schedule.
// Schedule examples:
//   - "@every 5m"       - Every 5 minutes
//   - "@hourly"         - Every hour
//   - "0 9 * * MON-FRI" - 9 AM weekdays
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			log.Printf("Job %s failed: %v", job.Name(), err)
			return
		}
		log.Printf("Job %s completed", job.Name())
	})
	if err != nil {
		return err
	}

	log.Printf("Job %s registered with schedule %q", job.Name(), schedule)
	return nil
}
