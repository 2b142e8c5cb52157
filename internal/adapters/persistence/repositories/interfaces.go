package repositories

import (
	"context"
	"time"

	"repairdesk/internal/adapters/persistence/models"
)

// AdminRepository defines admin data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// ReportFilter holds the optional list filters. Zero values mean "no filter".
type ReportFilter struct {
	Device   string // equality, case-normalized
	Status   string // equality
	Location string // case-insensitive substring
}

// ReportRepository defines device report data access
type ReportRepository interface {
	Create(ctx context.Context, report *models.DeviceReport) error
	GetByID(ctx context.Context, id string) (*models.DeviceReport, error)
	List(ctx context.Context, filter ReportFilter, offset, limit int) ([]*models.DeviceReport, int64, error)
	Save(ctx context.Context, report *models.DeviceReport) error
	Delete(ctx context.Context, id string) error
	DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
