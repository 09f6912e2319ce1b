package hrms

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreate_Validate(t *testing.T) {
	tests := []struct {
		name       string
		input      EmployeeCreate
		wantFields []string
	}{
		{
			name:  "valid without employee id",
			input: EmployeeCreate{FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering"},
		},
		{
			name:  "valid with employee id",
			input: EmployeeCreate{EmployeeID: "EMP001", FullName: "Jane", Email: "jane@company.com", Department: "HR"},
		},
		{
			name:       "missing everything",
			input:      EmployeeCreate{},
			wantFields: []string{"fullName", "email", "department"},
		},
		{
			name:       "bad email",
			input:      EmployeeCreate{FullName: "John", Email: "john@", Department: "Sales"},
			wantFields: []string{"email"},
		},
		{
			name:       "whitespace name",
			input:      EmployeeCreate{FullName: "   ", Email: "a@b.co", Department: "Sales"},
			wantFields: []string{"fullName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, fieldErrs[i].Field)
			}
		})
	}
}

func TestEmployeeCreate_Normalize(t *testing.T) {
	in := EmployeeCreate{EmployeeID: " EMP9 ", FullName: " Ada ", Email: " ada@x.io ", Department: " Eng "}

	got := in.Normalize()

	assert.Equal(t, EmployeeCreate{EmployeeID: "EMP9", FullName: "Ada", Email: "ada@x.io", Department: "Eng"}, got)
}

func TestAttendanceCreate_Validate(t *testing.T) {
	valid := AttendanceCreate{EmployeeID: "EMP001", Date: "2026-02-01", Status: StatusPresent}
	require.NoError(t, valid.Validate())

	bad := AttendanceCreate{EmployeeID: "", Date: "02/01/2026", Status: "Late"}
	err := bad.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)
	assert.Equal(t, "employeeId", fieldErrs[0].Field)
	assert.Equal(t, "date", fieldErrs[1].Field)
	assert.Contains(t, fieldErrs[1].Err.Error(), "YYYY-MM-DD")
	assert.Equal(t, "status", fieldErrs[2].Field)
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("a@b.co"))
	assert.Error(t, Email(""))
	assert.Error(t, Email("no-at-sign.com"))
	assert.Error(t, Email("two words@x.com"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Feb 1, 2026", FormatDate("2026-02-01"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    AttendanceStatus
		wantErr bool
	}{
		{in: "present", want: StatusPresent},
		{in: "Present", want: StatusPresent},
		{in: " ABSENT ", want: StatusAbsent},
		{in: "", wantErr: true},
		{in: "late", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
