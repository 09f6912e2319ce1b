package tui

import (
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/notify"
)

// Results of asynchronous API calls. Failures have already been published to
// the notification queue by the admin services, so err is only kept to
// render an error state.

type dashboardLoadedMsg struct {
	stats hrms.DashboardStats
	err   error
}

type employeesLoadedMsg struct {
	employees []hrms.Employee
	err       error
}

type attendanceLoadedMsg struct {
	employeeID string
	records    []hrms.Attendance
	err        error
}

type employeeCreatedMsg struct {
	employee hrms.Employee
	err      error
}

type employeeDeletedMsg struct {
	employeeID string
	err        error
}

type attendanceMarkedMsg struct {
	attendance hrms.Attendance
	err        error
}

type historyLoadedMsg struct {
	items []notify.Notification
	err   error
}
