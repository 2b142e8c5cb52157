package services

import (
	"context"
	"log"
	"time"

	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/config"

	"github.com/robfig/cron/v3"
)

// RetentionService periodically deletes resolved and cancelled reports that
// are older than the configured retention window. Disabled when the window
// is zero.
type RetentionService struct {
	reportRepo repositories.ReportRepository
	days       int
	schedule   string
	cron       *cron.Cron
}

// NewRetentionService creates a new retention service
func NewRetentionService(reportRepo repositories.ReportRepository, cfg *config.Config) *RetentionService {
	return &RetentionService{
		reportRepo: reportRepo,
		days:       cfg.Retention.Days,
		schedule:   cfg.Retention.Schedule,
	}
}

// Start schedules the sweep
func (s *RetentionService) Start() error {
	if s.days <= 0 {
		log.Println("Report retention sweep disabled")
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Report retention sweep scheduled (%q, keep %d days)", s.schedule, s.days)
	return nil
}

// Stop stops the scheduler
func (s *RetentionService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *RetentionService) sweep() {
	cutoff := time.Now().AddDate(0, 0, -s.days)
	removed, err := s.reportRepo.DeleteClosedBefore(context.Background(), cutoff)
	if err != nil {
		log.Printf("Retention sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Retention sweep removed %d closed reports older than %s", removed, cutoff.Format("2006-01-02"))
	}
}
