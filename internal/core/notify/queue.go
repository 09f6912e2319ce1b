package notify

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTTL is how long an entry stays visible when no lifetime is given.
const DefaultTTL = 5 * time.Second

// ID identifies an entry held by a Queue. IDs come from a per-queue counter
// and are never reused.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Entry is a transient message held by a Queue until it expires or is dismissed.
type Entry struct {
	ID        ID
	Level     Level
	Message   string
	TTL       time.Duration
	CreatedAt time.Time
}

// ExpiresAt returns the time the entry removes itself if not dismissed first.
func (e Entry) ExpiresAt() time.Time {
	return e.CreatedAt.Add(e.TTL)
}

// ChangeKind describes what happened to an entry.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeDismissed
	ChangeExpired
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeDismissed:
		return "dismissed"
	case ChangeExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Change is delivered to listeners after every mutation of the queue.
type Change struct {
	Kind  ChangeKind
	Entry Entry
}

// Listener observes queue changes. Listeners run synchronously, in the order
// the changes were applied, and must not call back into the Queue.
type Listener func(Change)

// timer is the subset of *time.Timer the queue relies on.
type timer interface {
	Stop() bool
}

type item struct {
	entry Entry
	timer timer
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Queue.
type Option func(*Queue)

// WithDefaultTTL sets the lifetime used when Enqueue receives ttl <= 0.
func WithDefaultTTL(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.ttl = d
		}
	}
}

// Queue holds the active notifications in insertion order. An entry leaves
// only when its lifetime elapses or it is dismissed; how many are drawn at
// once is up to the renderer. It is safe for concurrent use.
type Queue struct {
	mu         sync.Mutex
	dispatchMu sync.Mutex

	items     []*item
	subs      []subscription
	nextSubID int
	nextID    atomic.Uint64
	closed    bool
	ttl       time.Duration

	now       func() time.Time
	afterFunc func(d time.Duration, f func()) timer
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		ttl: DefaultTTL,
		now: time.Now,
		afterFunc: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends a new entry and schedules its removal after ttl. A ttl of
// zero or less uses the queue's default lifetime. Enqueue never blocks on the
// entry's lifetime and returns the new entry's ID. After Close the entry is
// discarded but a fresh ID is still returned.
func (q *Queue) Enqueue(level Level, message string, ttl time.Duration) ID {
	if ttl <= 0 {
		ttl = q.ttl
	}

	id := ID(q.nextID.Add(1))

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return id
	}

	it := &item{
		entry: Entry{
			ID:        id,
			Level:     level,
			Message:   message,
			TTL:       ttl,
			CreatedAt: q.now(),
		},
	}
	it.timer = q.afterFunc(ttl, func() { q.expire(id) })
	q.items = append(q.items, it)

	q.unlockAndDispatch(Change{Kind: ChangeAdded, Entry: it.entry})
	return id
}

// Dismiss removes the entry with the given ID and stops its pending expiry.
// It reports whether an entry was removed; dismissing an unknown or already
// removed ID is a no-op.
func (q *Queue) Dismiss(id ID) bool {
	q.mu.Lock()
	it, ok := q.removeLocked(id)
	if !ok {
		q.mu.Unlock()
		return false
	}
	it.timer.Stop()
	q.unlockAndDispatch(Change{Kind: ChangeDismissed, Entry: it.entry})
	return true
}

// DismissNewest removes the most recently added entry, if any.
func (q *Queue) DismissNewest() bool {
	q.mu.Lock()
	if len(q.items) == 0 {
		q.mu.Unlock()
		return false
	}
	id := q.items[len(q.items)-1].entry.ID
	q.mu.Unlock()
	return q.Dismiss(id)
}

// DismissAll removes every entry.
func (q *Queue) DismissAll() {
	q.mu.Lock()
	removed := q.items
	q.items = nil

	changes := make([]Change, 0, len(removed))
	for _, it := range removed {
		it.timer.Stop()
		changes = append(changes, Change{Kind: ChangeDismissed, Entry: it.entry})
	}
	q.unlockAndDispatch(changes...)
}

// List returns a snapshot of the held entries, oldest first.
func (q *Queue) List() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Entry, len(q.items))
	for i, it := range q.items {
		out[i] = it.entry
	}
	return out
}

// Len returns the number of held entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Subscribe registers fn to receive every subsequent change. The returned
// function removes the subscription.
func (q *Queue) Subscribe(fn Listener) (unsubscribe func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextSubID++
	id := q.nextSubID
	q.subs = append(q.subs, subscription{id: id, fn: fn})

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.subs = slices.DeleteFunc(q.subs, func(s subscription) bool { return s.id == id })
	}
}

// Close stops all pending expiry timers and drops held entries without
// notifying listeners.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, it := range q.items {
		it.timer.Stop()
	}
	q.items = nil
	q.closed = true
}

// Successf enqueues a success entry with the default lifetime.
func (q *Queue) Successf(format string, args ...any) ID {
	return q.Enqueue(LevelSuccess, fmt.Sprintf(format, args...), 0)
}

// Infof enqueues an info entry with the default lifetime.
func (q *Queue) Infof(format string, args ...any) ID {
	return q.Enqueue(LevelInfo, fmt.Sprintf(format, args...), 0)
}

// Warnf enqueues a warning entry with the default lifetime.
func (q *Queue) Warnf(format string, args ...any) ID {
	return q.Enqueue(LevelWarning, fmt.Sprintf(format, args...), 0)
}

// Errorf enqueues an error entry with the default lifetime.
func (q *Queue) Errorf(format string, args ...any) ID {
	return q.Enqueue(LevelError, fmt.Sprintf(format, args...), 0)
}

// expire runs on the entry's timer goroutine. If the entry was dismissed in
// the meantime there is nothing left to remove.
func (q *Queue) expire(id ID) {
	q.mu.Lock()
	it, ok := q.removeLocked(id)
	if !ok {
		q.mu.Unlock()
		return
	}
	q.unlockAndDispatch(Change{Kind: ChangeExpired, Entry: it.entry})
}

// removeLocked must be called with q.mu held.
func (q *Queue) removeLocked(id ID) (*item, bool) {
	for i, it := range q.items {
		if it.entry.ID == id {
			q.items = slices.Delete(q.items, i, i+1)
			return it, true
		}
	}
	return nil, false
}

// unlockAndDispatch releases q.mu and delivers changes to listeners. The
// dispatch lock is taken before q.mu is released so listeners observe changes
// in the order they were applied.
func (q *Queue) unlockAndDispatch(changes ...Change) {
	if len(changes) == 0 || len(q.subs) == 0 {
		q.mu.Unlock()
		return
	}

	subs := make([]subscription, len(q.subs))
	copy(subs, q.subs)

	q.dispatchMu.Lock()
	q.mu.Unlock()
	defer q.dispatchMu.Unlock()

	for _, c := range changes {
		for _, s := range subs {
			s.fn(c)
		}
	}
}
