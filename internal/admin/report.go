package admin

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/hrms/internal/api"
	"github.com/colonyops/hrms/internal/core/notify"
)

// Messages published after successful mutations.
const (
	MsgEmployeeAdded    = "Employee added successfully"
	MsgEmployeeDeleted  = "Employee deleted successfully"
	MsgAttendanceMarked = "Attendance marked successfully"
)

// report publishes err through bus and returns it unchanged. A rejected
// duplicate becomes a warning carrying the server's explanation; every other
// failure is shown as an error with its normalized message.
func report(bus *notify.Bus, err error) error {
	if err == nil || bus == nil {
		return err
	}

	if api.IsConflict(err) {
		apiErr, _ := api.AsError(err)
		bus.Warnf("%s", conflictMessage(apiErr))
		return err
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		bus.Errorf("%s %s", fieldErrs[0].Field, fieldErrs[0].Err.Error())
		return err
	}

	bus.Errorf("%s", api.Message(err))
	return err
}

func conflictMessage(e *api.Error) string {
	if e.Detail != "" {
		return e.Detail
	}
	return "Record already exists"
}
