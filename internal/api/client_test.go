package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrms/internal/core/hrms"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_defaults(t *testing.T) {
	c := New("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c = New("http://example.test:8000/")
	assert.Equal(t, "http://example.test:8000", c.BaseURL())
}

func TestClient_ListEmployees(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"id":         "65f0",
				"employeeId": "EMP001",
				"fullName":   "Ada Lovelace",
				"email":      "ada@example.com",
				"department": "Engineering",
				"createdAt":  "2026-02-01T09:30:00.123456",
			},
		})
	})

	got, err := c.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EMP001", got[0].EmployeeID)
	assert.Equal(t, "Ada Lovelace", got[0].FullName)
	assert.Equal(t, 2026, got[0].CreatedAt.Year())
	assert.Nil(t, got[0].PresentCount)
}

func TestClient_GetEmployee_escapes_id(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/EMP%2F1", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]any{"employeeId": "EMP/1", "presentCount": 3})
	})

	got, err := c.GetEmployee(context.Background(), "EMP/1")
	require.NoError(t, err)
	require.NotNil(t, got.PresentCount)
	assert.Equal(t, 3, *got.PresentCount)
}

func TestClient_CreateEmployee_sends_body(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada Lovelace", body["fullName"])
		_, hasID := body["employeeId"]
		assert.False(t, hasID, "empty employeeId is omitted")

		writeJSON(w, http.StatusCreated, map[string]any{"employeeId": "EMP042", "fullName": "Ada Lovelace"})
	})

	got, err := c.CreateEmployee(context.Background(), hrms.EmployeeCreate{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP042", got.EmployeeID)
}

func TestClient_CreateEmployee_conflict(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"detail": "Employee ID already exists"})
	})

	_, err := c.CreateEmployee(context.Background(), hrms.EmployeeCreate{FullName: "x", Email: "x@y.z", Department: "HR"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Employee ID already exists", apiErr.Detail)
	assert.Equal(t, "Request failed with status code 409", apiErr.Message)
}

func TestClient_error_statuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     map[string]any{"detail": "Employee not found"},
			wantKind: KindNotFound,
			wantMsg:  MsgNotFound,
		},
		{
			name:     "bad request with detail",
			status:   http.StatusBadRequest,
			body:     map[string]any{"detail": "Email required"},
			wantKind: KindBadRequest,
			wantMsg:  "Email required",
		},
		{
			name:     "bad request without body",
			status:   http.StatusBadRequest,
			body:     nil,
			wantKind: KindBadRequest,
			wantMsg:  MsgBadRequest,
		},
		{
			name:     "service unavailable",
			status:   http.StatusServiceUnavailable,
			body:     map[string]any{"detail": "db down"},
			wantKind: KindServer,
			wantMsg:  MsgServer,
		},
		{
			name:     "validation error list",
			status:   http.StatusUnprocessableEntity,
			body:     map[string]any{"detail": []map[string]any{{"msg": "field required"}, {"msg": "invalid email"}}},
			wantKind: KindNetwork,
			wantMsg:  "Request failed with status code 422",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, tt.body)
			})

			_, err := c.DashboardStats(context.Background())
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string", raw: `{"detail":"Email required"}`, want: "Email required"},
		{name: "list", raw: `{"detail":[{"msg":"a"},{"msg":""},{"msg":"b"}]}`, want: "a; b"},
		{name: "missing", raw: `{"error":"x"}`, want: ""},
		{name: "not json", raw: `<html>bad gateway</html>`, want: ""},
		{name: "object", raw: `{"detail":{"code":1}}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDetail([]byte(tt.raw)))
		})
	}
}

func TestClient_network_error(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.Health(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.NotContains(t, apiErr.Message, url)
}

func TestClient_timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Request timed out", Message(err))
}

func TestClient_invalid_response_body(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.ListEmployees(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Equal(t, "Invalid response from server", apiErr.Message)
}

func TestClient_attendance_endpoints(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/attendance":
			var in hrms.AttendanceCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(w, http.StatusCreated, map[string]any{
				"id": "a1", "employeeId": in.EmployeeID, "date": in.Date, "status": in.Status,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/attendance/EMP001":
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": "a1", "employeeId": "EMP001", "date": "2026-02-01", "status": "Present"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	marked, err := c.MarkAttendance(context.Background(), hrms.AttendanceCreate{
		EmployeeID: "EMP001",
		Date:       "2026-02-01",
		Status:     hrms.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, hrms.StatusPresent, marked.Status)

	records, err := c.ListAttendance(context.Background(), "EMP001")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-02-01", records[0].Date)
}

func TestClient_DeleteEmployee(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Employee deleted successfully", "employeeId": "EMP001"})
	})

	got, err := c.DeleteEmployee(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", got.EmployeeID)
}

func TestClient_records_metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithMetrics(m))

	_, err := c.Health(context.Background())
	require.NoError(t, err)
	_, err = c.GetEmployee(context.Background(), "missing")
	require.Error(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", string(KindNotFound))), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}
