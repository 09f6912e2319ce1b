// Package admintest provides an in-memory API client for tests of packages
// built on admin.App.
package admintest

import (
	"context"
	"sync"

	"github.com/colonyops/hrms/internal/api"
	"github.com/colonyops/hrms/internal/core/hrms"
)

// FakeClient is an in-memory stand-in for api.Client. Each Err field, when
// set, is returned by the matching call. Recorded calls are safe to read
// once the calls under test have returned.
type FakeClient struct {
	mu sync.Mutex

	Employees []hrms.Employee
	Records   map[string][]hrms.Attendance
	Stats     hrms.DashboardStats
	Status    string

	Created []hrms.EmployeeCreate
	Deleted []string
	Marked  []hrms.AttendanceCreate

	ListErr   error
	GetErr    error
	CreateErr error
	DeleteErr error
	MarkErr   error
	StatsErr  error
	HealthErr error
}

func (f *FakeClient) ListEmployees(context.Context) ([]hrms.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Employees, f.ListErr
}

func (f *FakeClient) GetEmployee(_ context.Context, id string) (hrms.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return hrms.Employee{}, f.GetErr
	}
	for _, e := range f.Employees {
		if e.EmployeeID == id {
			return e, nil
		}
	}
	return hrms.Employee{}, api.Normalize(api.Failure{Status: 404, Detail: "Employee not found"})
}

func (f *FakeClient) CreateEmployee(_ context.Context, in hrms.EmployeeCreate) (hrms.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return hrms.Employee{}, f.CreateErr
	}
	f.Created = append(f.Created, in)
	id := in.EmployeeID
	if id == "" {
		id = "EMP100"
	}
	e := hrms.Employee{EmployeeID: id, FullName: in.FullName, Email: in.Email, Department: in.Department}
	f.Employees = append(f.Employees, e)
	return e, nil
}

func (f *FakeClient) DeleteEmployee(_ context.Context, id string) (hrms.EmployeeDeleted, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return hrms.EmployeeDeleted{}, f.DeleteErr
	}
	f.Deleted = append(f.Deleted, id)
	return hrms.EmployeeDeleted{Message: "Employee deleted successfully", EmployeeID: id}, nil
}

func (f *FakeClient) MarkAttendance(_ context.Context, in hrms.AttendanceCreate) (hrms.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MarkErr != nil {
		return hrms.Attendance{}, f.MarkErr
	}
	f.Marked = append(f.Marked, in)
	return hrms.Attendance{ID: "a1", EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}, nil
}

func (f *FakeClient) ListAttendance(_ context.Context, id string) ([]hrms.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Records[id], nil
}

func (f *FakeClient) DashboardStats(context.Context) (hrms.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Stats, f.StatsErr
}

func (f *FakeClient) Health(context.Context) (hrms.Health, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.HealthErr != nil {
		return hrms.Health{}, f.HealthErr
	}
	status := f.Status
	if status == "" {
		status = "healthy"
	}
	return hrms.Health{Status: status}, nil
}
