package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/logging"
)

// ListEmployees returns every employee, newest first.
func (c *Client) ListEmployees(ctx context.Context) ([]hrms.Employee, error) {
	var out []hrms.Employee
	if err := c.Request(ctx, http.MethodGet, "/api/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEmployee returns a single employee with their present-day count.
func (c *Client) GetEmployee(ctx context.Context, employeeID string) (hrms.Employee, error) {
	ctx = logging.WithEmployeeID(ctx, employeeID)

	var out hrms.Employee
	err := c.Request(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(employeeID), nil, &out)
	return out, err
}

// CreateEmployee adds an employee. A duplicate employee ID or email is
// reported by the API as a conflict; see IsConflict.
func (c *Client) CreateEmployee(ctx context.Context, in hrms.EmployeeCreate) (hrms.Employee, error) {
	var out hrms.Employee
	err := c.Request(ctx, http.MethodPost, "/api/employees", in, &out)
	return out, err
}

// DeleteEmployee removes an employee and their attendance records.
func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) (hrms.EmployeeDeleted, error) {
	ctx = logging.WithEmployeeID(ctx, employeeID)

	var out hrms.EmployeeDeleted
	err := c.Request(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(employeeID), nil, &out)
	return out, err
}
