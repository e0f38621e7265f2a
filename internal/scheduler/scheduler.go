// Package scheduler runs recurring maintenance jobs, currently the nightly
// database backup.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mbeekman/wealthtrack/internal/service"
)

// Scheduler owns the cron runner.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler with the nightly backup job registered on the
// given cron expression (standard five-field format).
func New(backupService *service.BackupService, schedule string) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		path, err := backupService.Backup(ctx)
		if err != nil {
			log.Printf("scheduled backup failed: %v", err)
			return
		}
		log.Printf("scheduled backup written: %s", path)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register backup schedule %q: %w", schedule, err)
	}

	return &Scheduler{cron: c}, nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
