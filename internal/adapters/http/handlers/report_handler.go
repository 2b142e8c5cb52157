package handlers

import (
	"errors"

	"repairdesk/internal/adapters/persistence/models"
	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/core/domain"
	"repairdesk/internal/core/services"
	"repairdesk/internal/pkg/pagination"
	"repairdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ReportHandler handles device report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents the public report submission body
type CreateReportRequest struct {
	Device      string              `json:"device"`
	Model       string              `json:"model"`
	Issues      []string            `json:"issues"`
	Location    string              `json:"location"`
	ContactInfo *models.ContactInfo `json:"contactInfo"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
}

// Create handles POST /api/devices/report.
// The presence checks here are the fast path; field-level constraints are
// enforced by the persistence layer and surface as an itemized 400.
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Device == "" || req.Model == "" || len(req.Issues) == 0 || req.Location == "" || req.ContactInfo == nil {
		return response.BadRequest(c, "Missing required fields: device, model, issues, location, contactInfo")
	}
	if req.ContactInfo.Name == "" || req.ContactInfo.Email == "" || req.ContactInfo.Phone == "" {
		return response.BadRequest(c, "Missing required contact fields: name, email, phone")
	}

	report := &models.DeviceReport{
		Device:      req.Device,
		Model:       req.Model,
		Issues:      req.Issues,
		Location:    req.Location,
		ContactInfo: *req.ContactInfo,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	created, err := h.reportService.Create(c.Context(), report)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, verr.Details)
		}
		return err
	}

	return response.Created(c, "Device report created successfully", created.ToResponse())
}

// List handles GET /api/devices/reports
func (h *ReportHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	filter := repositories.ReportFilter{
		Device:   c.Query("device"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
	}

	reports, total, err := h.reportService.List(c.Context(), filter, params.Offset, params.Limit)
	if err != nil {
		return err
	}

	data := make([]*models.ReportResponse, 0, len(reports))
	for _, r := range reports {
		data = append(data, r.ToResponse())
	}

	return response.Paginated(c, data, pagination.GetMeta(params, total))
}

// GetByID handles GET /api/devices/reports/:id
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return response.BadRequest(c, "Invalid report ID format")
	}

	report, err := h.reportService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Device report not found")
		}
		return err
	}

	return response.Success(c, "", report.ToResponse())
}

// Update handles PUT /api/devices/reports/:id
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return response.BadRequest(c, "Invalid report ID format")
	}

	var input services.UpdateReportInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.reportService.Update(c.Context(), id, &input)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Device report not found")
		case errors.As(err, &verr):
			return response.ValidationFailed(c, verr.Details)
		default:
			return err
		}
	}

	return response.Success(c, "Device report updated successfully", updated.ToResponse())
}

// Delete handles DELETE /api/devices/reports/:id
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	err := h.reportService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Device report not found")
		}
		return err
	}

	return response.Success(c, "Device report deleted successfully", nil)
}
