package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Patterns the tag vocabulary cannot express directly.
	_ = v.RegisterValidation("emailpattern", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phonechars", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateReport checks every schema constraint on a report and returns the
// ordered list of human-readable field messages, or nil when the document is
// valid. Runs before every insert and save so an invalid document is never
// written.
func ValidateReport(r *DeviceReport) []string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, reportMessage(fe))
	}
	return details
}

func reportMessage(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "DeviceReport.")
	if i := strings.IndexByte(ns, '['); i >= 0 {
		ns = ns[:i]
	}

	switch ns {
	case "Device":
		if fe.Tag() == "required" {
			return "Device type is required"
		}
		return "Device must be one of: computer, laptop, phone, tablet, printer, monitor, other"
	case "Model":
		switch fe.Tag() {
		case "required":
			return "Device model is required"
		case "min":
			return "Model must be at least 2 characters long"
		}
		return "Model cannot exceed 50 characters"
	case "Issues":
		if fe.Tag() == "oneof" {
			return "Invalid issue type specified"
		}
		return "At least one issue must be reported"
	case "Location":
		switch fe.Tag() {
		case "required":
			return "Location is required"
		case "min":
			return "Location must be at least 2 characters long"
		}
		return "Location cannot exceed 100 characters"
	case "ContactInfo.Name":
		switch fe.Tag() {
		case "required":
			return "Name is required"
		case "min":
			return "Name must be at least 2 characters long"
		}
		return "Name cannot exceed 100 characters"
	case "ContactInfo.Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email"
	case "ContactInfo.Phone":
		if fe.Tag() == "required" {
			return "Phone number is required"
		}
		return "Please enter a valid phone number"
	case "ContactInfo.Message":
		return "Message cannot exceed 1000 characters"
	case "ContactInfo.Method":
		return "Contact method must be one of: email, phone, both"
	case "Status":
		return "Status must be one of: pending, in-progress, resolved, cancelled"
	case "Priority":
		return "Priority must be one of: low, medium, high, urgent"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// ValidateAdmin checks the admin schema constraints.
func ValidateAdmin(a *Admin) []string {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch {
		case fe.StructField() == "Username" && fe.Tag() == "required":
			details = append(details, "Username is required")
		case fe.StructField() == "Username" && fe.Tag() == "min":
			details = append(details, "Username must be at least 3 characters long")
		case fe.StructField() == "Username":
			details = append(details, "Username cannot exceed 50 characters")
		case fe.Tag() == "required":
			details = append(details, "Password is required")
		default:
			details = append(details, "Password must be at least 6 characters long")
		}
	}
	return details
}
