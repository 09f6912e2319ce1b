package admin

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/logging"
	"github.com/colonyops/hrms/internal/core/notify"
)

// AttendanceService records and lists daily attendance.
type AttendanceService struct {
	client Client
	bus    *notify.Bus
	log    zerolog.Logger
	today  func() string
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(client Client, bus *notify.Bus) *AttendanceService {
	return &AttendanceService{
		client: client,
		bus:    bus,
		log:    logging.Component("attendance"),
		today:  hrms.Today,
	}
}

// Mark records attendance. An empty date means today and an empty status
// means present. Marking the same employee twice on a day is surfaced as a
// warning.
func (s *AttendanceService) Mark(ctx context.Context, in hrms.AttendanceCreate) (hrms.Attendance, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	if in.Date == "" {
		in.Date = s.today()
	}
	if in.Status == "" {
		in.Status = hrms.StatusPresent
	}

	if err := in.Validate(); err != nil {
		return hrms.Attendance{}, report(s.bus, err)
	}

	a, err := s.client.MarkAttendance(ctx, in)
	if err != nil {
		return hrms.Attendance{}, report(s.bus, err)
	}

	s.log.Info().
		Str("employee_id", a.EmployeeID).
		Str("date", a.Date).
		Str("status", string(a.Status)).
		Msg("attendance marked")
	s.bus.Successf("%s", MsgAttendanceMarked)
	return a, nil
}

// List returns an employee's attendance records, newest first.
func (s *AttendanceService) List(ctx context.Context, employeeID string) ([]hrms.Attendance, error) {
	records, err := s.client.ListAttendance(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		return nil, report(s.bus, err)
	}
	return records, nil
}

// Summary counts present and absent days in records.
func Summary(records []hrms.Attendance) (present, absent int) {
	for _, r := range records {
		switch r.Status {
		case hrms.StatusPresent:
			present++
		case hrms.StatusAbsent:
			absent++
		}
	}
	return present, absent
}
