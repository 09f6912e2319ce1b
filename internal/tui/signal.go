package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/hrms/internal/core/notify"
)

// toastsChangedMsg asks the model to re-render after the queue changed.
type toastsChangedMsg struct{}

// QueueSignal turns queue changes, which arrive on timer goroutines, into
// coalesced tea messages. Any number of changes between two reads produce a
// single toastsChangedMsg.
type QueueSignal struct {
	signal chan struct{}
	done   chan struct{}
	stop   func()
	once   sync.Once
}

// WatchQueue subscribes to q until Close is called.
func WatchQueue(q *notify.Queue) *QueueSignal {
	s := &QueueSignal{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.stop = q.Subscribe(func(notify.Change) {
		select {
		case s.signal <- struct{}{}:
		default:
		}
	})
	return s
}

// WaitForSignal blocks until the queue changes. It returns nil once the
// signal is closed.
func (s *QueueSignal) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.signal:
			return toastsChangedMsg{}
		case <-s.done:
			return nil
		}
	}
}

// Close unsubscribes from the queue and releases any pending WaitForSignal.
func (s *QueueSignal) Close() {
	s.once.Do(func() {
		s.stop()
		close(s.done)
	})
}
