package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Bus is the single entry point page-level callers use to surface messages.
// Each published notification is recorded in the optional Store and then
// shown through the Queue.
type Bus struct {
	store Store
	queue *Queue
}

// NewBus creates a notification bus that feeds queue. If store is nil,
// notifications are displayed but not persisted.
func NewBus(store Store, queue *Queue) *Bus {
	return &Bus{
		store: store,
		queue: queue,
	}
}

// Queue returns the queue the bus displays through.
func (b *Bus) Queue() *Queue {
	return b.queue
}

// Publish records n and enqueues it for display with the given lifetime.
// A ttl of zero or less uses the queue default.
func (b *Bus) Publish(n Notification, ttl time.Duration) ID {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if b.store != nil {
		if _, err := b.store.Save(context.Background(), n); err != nil {
			log.Error().Err(err).Str("message", n.Message).Msg("failed to persist notification")
		}
	}

	return b.queue.Enqueue(n.Level, n.Message, ttl)
}

// Successf publishes a success-level notification.
func (b *Bus) Successf(format string, args ...any) ID {
	return b.publishf(LevelSuccess, format, args...)
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) ID {
	return b.publishf(LevelInfo, format, args...)
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(format string, args ...any) ID {
	return b.publishf(LevelWarning, format, args...)
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) ID {
	return b.publishf(LevelError, format, args...)
}

func (b *Bus) publishf(level Level, format string, args ...any) ID {
	return b.Publish(Notification{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}, 0)
}

// History returns all persisted notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History(ctx context.Context) ([]Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(ctx)
}

// Clear deletes all persisted notifications.
func (b *Bus) Clear(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(ctx)
}
