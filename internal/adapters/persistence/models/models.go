package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"repairdesk/internal/core/domain"

	"gorm.io/gorm"
)

// Admin represents the admins table
type Admin struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username" validate:"required,min=3,max=50"`
	Password  string    `gorm:"size:255;not null" json:"-" validate:"required,min=6"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// AdminResponse DTO, never exposes the password hash
type AdminResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Admin) ToResponse() *AdminResponse {
	return &AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		CreatedAt: a.CreatedAt,
	}
}

// IssueList stores the reported issues as a JSON-encoded text column so the
// same model works on MySQL and SQLite.
type IssueList []string

func (l IssueList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IssueList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported issue list type %T", value)
	}
}

// ContactInfo is embedded by value in DeviceReport. It has no identity of
// its own and lives and dies with its parent report.
type ContactInfo struct {
	Name    string `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email   string `gorm:"size:255;not null" json:"email" validate:"required,emailpattern"`
	Phone   string `gorm:"size:50;not null" json:"phone" validate:"required,phonechars"`
	Message string `gorm:"size:1000" json:"message" validate:"max=1000"`
	Method  string `gorm:"size:10" json:"method" validate:"omitempty,oneof=email phone both"`
}

// DeviceReport represents the device_reports table
type DeviceReport struct {
	ID          string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Device      string      `gorm:"size:20;not null;index:idx_device_location" json:"device" validate:"required,oneof=computer laptop phone tablet printer monitor other"`
	Model       string      `gorm:"size:50;not null" json:"model" validate:"required,min=2,max=50"`
	Issues      IssueList   `gorm:"type:text;not null" json:"issues" validate:"required,min=1,dive,oneof=screen does-not-turn-on battery keyboard mouse wifi bluetooth audio camera charging overheating slow-performance software-crash hardware-damage other"`
	Location    string      `gorm:"size:100;not null;index:idx_device_location" json:"location" validate:"required,min=2,max=100"`
	ContactInfo ContactInfo `gorm:"embedded;embeddedPrefix:contact_" json:"contactInfo"`
	Status      string      `gorm:"size:20;index" json:"status" validate:"omitempty,oneof=pending in-progress resolved cancelled"`
	Priority    string      `gorm:"size:10" json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DeviceReport) TableName() string {
	return "device_reports"
}

// Normalize trims string fields, lowercases the case-normalized ones and
// applies enum defaults. Called before validation on every insert and save.
func (r *DeviceReport) Normalize() {
	r.Device = strings.ToLower(strings.TrimSpace(r.Device))
	r.Model = strings.TrimSpace(r.Model)
	r.Location = strings.TrimSpace(r.Location)
	r.ContactInfo.Name = strings.TrimSpace(r.ContactInfo.Name)
	r.ContactInfo.Email = strings.ToLower(strings.TrimSpace(r.ContactInfo.Email))
	r.ContactInfo.Phone = strings.TrimSpace(r.ContactInfo.Phone)
	r.ContactInfo.Message = strings.TrimSpace(r.ContactInfo.Message)
	if r.ContactInfo.Method == "" {
		r.ContactInfo.Method = domain.ContactByEmail
	}
	if r.Status == "" {
		r.Status = domain.StatusPending
	}
	if r.Priority == "" {
		r.Priority = domain.PriorityMedium
	}
}

// Age returns the whole days elapsed since the report was created.
func (r *DeviceReport) Age() int {
	return int(time.Since(r.CreatedAt).Hours() / 24)
}

// ReportResponse DTO, the stored report plus the derived reportAge field.
type ReportResponse struct {
	ID          string      `json:"id"`
	Device      string      `json:"device"`
	Model       string      `json:"model"`
	Issues      []string    `json:"issues"`
	Location    string      `json:"location"`
	ContactInfo ContactInfo `json:"contactInfo"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	ReportAge   int         `json:"reportAge"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (r *DeviceReport) ToResponse() *ReportResponse {
	return &ReportResponse{
		ID:          r.ID,
		Device:      r.Device,
		Model:       r.Model,
		Issues:      r.Issues,
		Location:    r.Location,
		ContactInfo: r.ContactInfo,
		Status:      r.Status,
		Priority:    r.Priority,
		ReportAge:   r.Age(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&DeviceReport{},
	)
}
