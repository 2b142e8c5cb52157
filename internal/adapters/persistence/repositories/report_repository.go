package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairdesk/internal/adapters/persistence/models"
	"repairdesk/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reportRepository implements ReportRepository
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create validates and inserts a new report. An invalid document is rejected
// before anything touches the database.
func (r *reportRepository) Create(ctx context.Context, report *models.DeviceReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	report.Normalize()
	if details := models.ValidateReport(report); details != nil {
		return domain.NewValidationError(details)
	}
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID gets a report by ID
func (r *reportRepository) GetByID(ctx context.Context, id string) (*models.DeviceReport, error) {
	var report models.DeviceReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// List returns one page of reports matching the filter, newest first,
// together with the total match count.
func (r *reportRepository) List(ctx context.Context, filter ReportFilter, offset, limit int) ([]*models.DeviceReport, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.DeviceReport{})

	if filter.Device != "" {
		q = q.Where("device = ?", strings.ToLower(filter.Device))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []*models.DeviceReport
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Save re-validates and writes back a full report document
func (r *reportRepository) Save(ctx context.Context, report *models.DeviceReport) error {
	report.Normalize()
	if details := models.ValidateReport(report); details != nil {
		return domain.NewValidationError(details)
	}
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete removes a report by ID
func (r *reportRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.DeviceReport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteClosedBefore removes resolved and cancelled reports created before
// the cutoff. Used by the retention sweep.
func (r *reportRepository) DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status IN ?", []string{domain.StatusResolved, domain.StatusCancelled}).
		Where("created_at < ?", cutoff).
		Delete(&models.DeviceReport{})
	return res.RowsAffected, res.Error
}
