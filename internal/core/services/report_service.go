package services

import (
	"context"
	"log"

	"repairdesk/internal/adapters/persistence/models"
	"repairdesk/internal/adapters/persistence/repositories"
)

// Report lifecycle event names
const (
	EventReportCreated = "report.created"
	EventReportUpdated = "report.updated"
	EventReportDeleted = "report.deleted"
)

// ReportEventPublisher publishes report lifecycle events to the broker
type ReportEventPublisher interface {
	PublishReportEvent(event, reportID string) error
}

// ReportService handles device report business logic
type ReportService struct {
	reportRepo repositories.ReportRepository
	publisher  ReportEventPublisher
}

// NewReportService creates a new report service. publisher may be nil when
// no broker is configured.
func NewReportService(reportRepo repositories.ReportRepository, publisher ReportEventPublisher) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		publisher:  publisher,
	}
}

// UpdateReportInput carries a partial report update. Nil fields are left
// untouched; a provided contactInfo replaces the embedded value wholesale.
type UpdateReportInput struct {
	Device      *string             `json:"device"`
	Model       *string             `json:"model"`
	Issues      []string            `json:"issues"`
	Location    *string             `json:"location"`
	ContactInfo *models.ContactInfo `json:"contactInfo"`
	Status      *string             `json:"status"`
	Priority    *string             `json:"priority"`
}

// Create persists a new report
func (s *ReportService) Create(ctx context.Context, report *models.DeviceReport) (*models.DeviceReport, error) {
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	s.publish(EventReportCreated, report.ID)
	return report, nil
}

// List returns one page of reports matching the filter plus the total count
func (s *ReportService) List(ctx context.Context, filter repositories.ReportFilter, offset, limit int) ([]*models.DeviceReport, int64, error) {
	return s.reportRepo.List(ctx, filter, offset, limit)
}

// GetByID returns a single report
func (s *ReportService) GetByID(ctx context.Context, id string) (*models.DeviceReport, error) {
	return s.reportRepo.GetByID(ctx, id)
}

// Update applies a partial update and re-validates the resulting document as
// a whole. A validation failure leaves the stored document unchanged.
func (s *ReportService) Update(ctx context.Context, id string, input *UpdateReportInput) (*models.DeviceReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Device != nil {
		report.Device = *input.Device
	}
	if input.Model != nil {
		report.Model = *input.Model
	}
	if input.Issues != nil {
		report.Issues = input.Issues
	}
	if input.Location != nil {
		report.Location = *input.Location
	}
	if input.ContactInfo != nil {
		report.ContactInfo = *input.ContactInfo
	}
	if input.Status != nil {
		report.Status = *input.Status
	}
	if input.Priority != nil {
		report.Priority = *input.Priority
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	s.publish(EventReportUpdated, report.ID)
	return report, nil
}

// Delete removes a report
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EventReportDeleted, id)
	return nil
}

// publish is fire-and-forget: a broker failure never fails the request.
func (s *ReportService) publish(event, reportID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishReportEvent(event, reportID); err != nil {
		log.Printf("Failed to publish %s for report %s: %v", event, reportID, err)
	}
}
