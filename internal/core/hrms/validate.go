package hrms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// ErrInvalidStatus is returned for a status other than Present or Absent.
var ErrInvalidStatus = errors.New("status must be present or absent")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required validates that s is non-empty after trimming whitespace.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// Email validates the general shape of an email address.
func Email(s string) error {
	if err := Required(s); err != nil {
		return err
	}
	if !emailPattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("is not a valid email address")
	}
	return nil
}

// Date validates a YYYY-MM-DD date.
func Date(s string) error {
	if err := Required(s); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("must be a date in YYYY-MM-DD form")
	}
	return nil
}

// Status validates an attendance status.
func Status(s string) error {
	if !AttendanceStatus(s).IsValid() {
		return fmt.Errorf("must be %q or %q", StatusPresent, StatusAbsent)
	}
	return nil
}

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (AttendanceStatus, error) {
	for _, st := range AttendanceStatuses() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q: %w", s, ErrInvalidStatus)
}

// Validate checks the fields the API requires before the request is sent.
// The server remains the authority on everything else.
func (e EmployeeCreate) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("fullName", e.FullName, Required),
		criterio.Run("email", e.Email, Email),
		criterio.Run("department", e.Department, Required),
	)
}

// Normalize trims surrounding whitespace from every field.
func (e EmployeeCreate) Normalize() EmployeeCreate {
	return EmployeeCreate{
		EmployeeID: strings.TrimSpace(e.EmployeeID),
		FullName:   strings.TrimSpace(e.FullName),
		Email:      strings.TrimSpace(e.Email),
		Department: strings.TrimSpace(e.Department),
	}
}

// Validate checks the attendance payload before it is sent.
func (a AttendanceCreate) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("employeeId", a.EmployeeID, Required),
		criterio.Run("date", a.Date, Date),
		criterio.Run("status", string(a.Status), Status),
	)
}
