// Package hrms defines the records exchanged with the HRMS API.
package hrms

import (
	"time"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

// AttendanceStatus is whether an employee was present on a given day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// IsValid reports whether s is a known attendance status.
func (s AttendanceStatus) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceStatuses lists the selectable statuses in display order.
func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{StatusPresent, StatusAbsent}
}

// DefaultDepartments is used for department selection when none are configured.
var DefaultDepartments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
}

// Employee is an employee record as returned by the API.
type Employee struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	CreatedAt    Timestamp `json:"createdAt"`
	PresentCount *int      `json:"presentCount,omitempty"`
}

// EmployeeCreate is the payload for creating an employee. EmployeeID is
// optional; the server assigns one when it is empty.
type EmployeeCreate struct {
	EmployeeID string `json:"employeeId,omitempty"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// EmployeeDeleted is the confirmation returned after deleting an employee.
type EmployeeDeleted struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

// Attendance is a single attendance record.
type Attendance struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  Timestamp        `json:"createdAt"`
}

// AttendanceCreate is the payload for marking attendance.
type AttendanceCreate struct {
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

// RecentAttendance is an attendance record joined with employee details.
type RecentAttendance struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employeeId"`
	EmployeeName string           `json:"employeeName"`
	Department   string           `json:"department"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
	CreatedAt    Timestamp        `json:"createdAt"`
}

// DashboardStats holds the aggregate counts shown on the dashboard.
type DashboardStats struct {
	TotalEmployees    int                `json:"totalEmployees"`
	PresentToday      int                `json:"presentToday"`
	AbsentToday       int                `json:"absentToday"`
	ActiveDepartments int                `json:"activeDepartments"`
	RecentAttendance  []RecentAttendance `json:"recentAttendance"`
}

// Health is the API health check response.
type Health struct {
	Status    string    `json:"status"`
	Timestamp Timestamp `json:"timestamp"`
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDate renders a wire date like "Feb 1, 2026". Unparseable input is
// returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
