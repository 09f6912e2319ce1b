// Package admin holds the operations behind every screen and command. Each
// operation calls the API and reports its outcome through the notification
// bus, so the CLI and TUI surface identical messages.
package admin

import (
	"context"

	"github.com/colonyops/hrms/internal/api"
	"github.com/colonyops/hrms/internal/core/config"
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/data/db"
)

// Client is the subset of the API client the services use.
type Client interface {
	ListEmployees(ctx context.Context) ([]hrms.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (hrms.Employee, error)
	CreateEmployee(ctx context.Context, in hrms.EmployeeCreate) (hrms.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) (hrms.EmployeeDeleted, error)
	MarkAttendance(ctx context.Context, in hrms.AttendanceCreate) (hrms.Attendance, error)
	ListAttendance(ctx context.Context, employeeID string) ([]hrms.Attendance, error)
	DashboardStats(ctx context.Context) (hrms.DashboardStats, error)
	Health(ctx context.Context) (hrms.Health, error)
}

var _ Client = (*api.Client)(nil)

// App is the central entry point for all admin operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Employees  *EmployeeService
	Attendance *AttendanceService
	Dashboard  *DashboardService

	Notifications *notify.Bus
	Config        *config.Config
	DB            *db.DB
}

// NewApp constructs an App from explicit dependencies. database may be nil
// when notification history is disabled.
func NewApp(client Client, bus *notify.Bus, cfg *config.Config, database *db.DB) *App {
	return &App{
		Employees:     NewEmployeeService(client, bus),
		Attendance:    NewAttendanceService(client, bus),
		Dashboard:     NewDashboardService(client, bus),
		Notifications: bus,
		Config:        cfg,
		DB:            database,
	}
}

// Queue returns the queue that holds visible notifications.
func (a *App) Queue() *notify.Queue {
	return a.Notifications.Queue()
}

// Departments returns the department options offered in forms.
func (a *App) Departments() []string {
	if a.Config == nil || len(a.Config.Departments) == 0 {
		return hrms.DefaultDepartments
	}
	return a.Config.Departments
}
