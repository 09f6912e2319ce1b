package logging

import "context"

type contextKey string

// Keys double as the log field names ContextHook writes.
const (
	requestIDKey contextKey = "request_id"
	employeeKey  contextKey = "employee_id"
)

var contextFields = []contextKey{requestIDKey, employeeKey}

// WithRequestID adds an API request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithEmployeeID adds the employee being operated on to the context.
func WithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, employeeKey, employeeID)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetEmployeeID retrieves the employee ID from the context.
// Returns empty string if not present.
func GetEmployeeID(ctx context.Context) string {
	if id, ok := ctx.Value(employeeKey).(string); ok {
		return id
	}
	return ""
}
