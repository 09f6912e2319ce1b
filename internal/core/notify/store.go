package notify

import (
	"context"
	"slices"
	"time"
)

// Store is the durable history behind a Bus. Save assigns the ID.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context) ([]Notification, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Notification is one published message as kept in history.
type Notification struct {
	ID        int64     `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Level is a toast's severity. It selects the toast's icon and colour.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Levels lists every level from least to most severe.
var Levels = []Level{LevelSuccess, LevelInfo, LevelWarning, LevelError}

func (l Level) IsValid() bool {
	return slices.Contains(Levels, l)
}
