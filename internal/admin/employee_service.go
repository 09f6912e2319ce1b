package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/logging"
	"github.com/colonyops/hrms/internal/core/notify"
)

// EmployeeFilter narrows a listing with case-insensitive glob patterns.
// Empty patterns match everything.
type EmployeeFilter struct {
	Department string
	Name       string
}

// Validate checks that both patterns are well formed.
func (f EmployeeFilter) Validate() error {
	for field, pattern := range map[string]string{"department": f.Department, "name": f.Name} {
		if pattern != "" && !doublestar.ValidatePattern(strings.ToLower(pattern)) {
			return fmt.Errorf("invalid %s pattern %q", field, pattern)
		}
	}
	return nil
}

// Match reports whether e satisfies the filter.
func (f EmployeeFilter) Match(e hrms.Employee) bool {
	return globMatch(f.Department, e.Department) &&
		(globMatch(f.Name, e.FullName) || globMatch(f.Name, e.EmployeeID))
}

func globMatch(pattern, value string) bool {
	if pattern == "" {
		return true
	}
	ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(value))
	return err == nil && ok
}

// EmployeeService manages employee records.
type EmployeeService struct {
	client Client
	bus    *notify.Bus
	log    zerolog.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(client Client, bus *notify.Bus) *EmployeeService {
	return &EmployeeService{
		client: client,
		bus:    bus,
		log:    logging.Component("employees"),
	}
}

// List returns the employees matching filter, in the order the API returns
// them.
func (s *EmployeeService) List(ctx context.Context, filter EmployeeFilter) ([]hrms.Employee, error) {
	if err := filter.Validate(); err != nil {
		return nil, report(s.bus, err)
	}

	all, err := s.client.ListEmployees(ctx)
	if err != nil {
		return nil, report(s.bus, err)
	}

	out := make([]hrms.Employee, 0, len(all))
	for _, e := range all {
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Get returns one employee.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (hrms.Employee, error) {
	e, err := s.client.GetEmployee(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		return hrms.Employee{}, report(s.bus, err)
	}
	return e, nil
}

// Create validates and submits a new employee. A duplicate ID or email is
// surfaced as a warning rather than an error.
func (s *EmployeeService) Create(ctx context.Context, in hrms.EmployeeCreate) (hrms.Employee, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return hrms.Employee{}, report(s.bus, err)
	}

	e, err := s.client.CreateEmployee(ctx, in)
	if err != nil {
		return hrms.Employee{}, report(s.bus, err)
	}

	s.log.Info().Str("employee_id", e.EmployeeID).Msg("employee created")
	s.bus.Successf("%s", MsgEmployeeAdded)
	return e, nil
}

// Delete removes an employee and their attendance history.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return report(s.bus, fmt.Errorf("employee ID is required"))
	}

	if _, err := s.client.DeleteEmployee(ctx, employeeID); err != nil {
		return report(s.bus, err)
	}

	s.log.Info().Str("employee_id", employeeID).Msg("employee deleted")
	s.bus.Successf("%s", MsgEmployeeDeleted)
	return nil
}
