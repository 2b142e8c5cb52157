package services_test

import (
	"context"
	"testing"
	"time"

	"repairdesk/internal/adapters/persistence/models"
	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/core/domain"
	"repairdesk/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReportRepository is a mock implementation of repositories.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.DeviceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id string) (*models.DeviceReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeviceReport), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, filter repositories.ReportFilter, offset, limit int) ([]*models.DeviceReport, int64, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.DeviceReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) Save(ctx context.Context, report *models.DeviceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReportRepository) DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// recordingPublisher records published events
type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) PublishReportEvent(event, reportID string) error {
	p.events = append(p.events, event+":"+reportID)
	return nil
}

func storedReport() *models.DeviceReport {
	return &models.DeviceReport{
		ID:       "11111111-1111-1111-1111-111111111111",
		Device:   "laptop",
		Model:    "ThinkPad X1",
		Issues:   models.IssueList{"battery"},
		Location: "Office 3B",
		ContactInfo: models.ContactInfo{
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			Phone:  "555-1234",
			Method: "email",
		},
		Status:   "pending",
		Priority: "medium",
	}
}

func TestReportServiceCreatePublishes(t *testing.T) {
	mockRepo := new(MockReportRepository)
	pub := &recordingPublisher{}
	svc := services.NewReportService(mockRepo, pub)

	report := storedReport()
	mockRepo.On("Create", mock.Anything, report).Return(nil).Once()

	created, err := svc.Create(context.Background(), report)
	assert.NoError(t, err)
	assert.Equal(t, report, created)
	assert.Equal(t, []string{"report.created:" + report.ID}, pub.events)
}

func TestReportServiceCreateNilPublisher(t *testing.T) {
	mockRepo := new(MockReportRepository)
	svc := services.NewReportService(mockRepo, nil)

	report := storedReport()
	mockRepo.On("Create", mock.Anything, report).Return(nil).Once()

	_, err := svc.Create(context.Background(), report)
	assert.NoError(t, err)
}

func TestReportServiceUpdateAppliesPatch(t *testing.T) {
	mockRepo := new(MockReportRepository)
	pub := &recordingPublisher{}
	svc := services.NewReportService(mockRepo, pub)

	existing := storedReport()
	mockRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.DeviceReport")).Return(nil).Once()

	status := "resolved"
	model := "ThinkPad X1 Carbon"
	updated, err := svc.Update(context.Background(), existing.ID, &services.UpdateReportInput{
		Model:  &model,
		Status: &status,
	})
	assert.NoError(t, err)
	assert.Equal(t, "resolved", updated.Status)
	assert.Equal(t, "ThinkPad X1 Carbon", updated.Model)

	// Untouched fields survive the patch
	assert.Equal(t, "laptop", updated.Device)
	assert.Equal(t, models.IssueList{"battery"}, updated.Issues)
	assert.Equal(t, "Jane Doe", updated.ContactInfo.Name)

	assert.Equal(t, []string{"report.updated:" + existing.ID}, pub.events)
	mockRepo.AssertExpectations(t)
}

func TestReportServiceUpdateReplacesContactInfo(t *testing.T) {
	mockRepo := new(MockReportRepository)
	svc := services.NewReportService(mockRepo, nil)

	existing := storedReport()
	mockRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.DeviceReport")).Return(nil).Once()

	updated, err := svc.Update(context.Background(), existing.ID, &services.UpdateReportInput{
		ContactInfo: &models.ContactInfo{
			Name:  "John Roe",
			Email: "john@example.com",
			Phone: "555-9876",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "John Roe", updated.ContactInfo.Name)
	assert.Equal(t, "john@example.com", updated.ContactInfo.Email)
}

func TestReportServiceUpdateNotFound(t *testing.T) {
	mockRepo := new(MockReportRepository)
	pub := &recordingPublisher{}
	svc := services.NewReportService(mockRepo, pub)

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	updated, err := svc.Update(context.Background(), "missing", &services.UpdateReportInput{})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pub.events)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReportServiceDelete(t *testing.T) {
	mockRepo := new(MockReportRepository)
	pub := &recordingPublisher{}
	svc := services.NewReportService(mockRepo, pub)

	mockRepo.On("Delete", mock.Anything, "some-id").Return(nil).Once()

	assert.NoError(t, svc.Delete(context.Background(), "some-id"))
	assert.Equal(t, []string{"report.deleted:some-id"}, pub.events)
}

func TestReportServiceDeleteNotFound(t *testing.T) {
	mockRepo := new(MockReportRepository)
	pub := &recordingPublisher{}
	svc := services.NewReportService(mockRepo, pub)

	mockRepo.On("Delete", mock.Anything, "missing").Return(domain.ErrNotFound).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), domain.ErrNotFound)
	assert.Empty(t, pub.events)
}
