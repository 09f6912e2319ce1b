package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/logging"
)

// MarkAttendance records attendance for one employee on one day. Marking the
// same employee twice on a day is reported as a conflict.
func (c *Client) MarkAttendance(ctx context.Context, in hrms.AttendanceCreate) (hrms.Attendance, error) {
	ctx = logging.WithEmployeeID(ctx, in.EmployeeID)

	var out hrms.Attendance
	err := c.Request(ctx, http.MethodPost, "/api/attendance", in, &out)
	return out, err
}

// ListAttendance returns an employee's attendance records, newest date first.
func (c *Client) ListAttendance(ctx context.Context, employeeID string) ([]hrms.Attendance, error) {
	ctx = logging.WithEmployeeID(ctx, employeeID)

	var out []hrms.Attendance
	if err := c.Request(ctx, http.MethodGet, "/api/attendance/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
