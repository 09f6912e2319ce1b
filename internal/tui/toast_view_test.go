package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/pkg/tuitest"
)

func TestToastView_empty(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()

	v := NewToastView(q, 0)
	assert.Empty(t, v.View())
	assert.Equal(t, "background", v.Overlay("background", 80, 24, 1))
}

func TestToastView_stacks_oldest_first(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()

	q.Successf("Employee added successfully")
	q.Errorf("Network error. Please check your connection.")

	out := tuitest.StripANSI(NewToastView(q, 0).View())

	first := strings.Index(out, "Employee added successfully")
	second := strings.Index(out, "Network error")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, out, "✓ Employee added successfully")
	assert.Contains(t, out, "✕ Network error")
}

func TestToastView_follows_queue(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()

	v := NewToastView(q, 0)
	id := q.Warnf("Attendance already marked")
	assert.Contains(t, tuitest.StripANSI(v.View()), "Attendance already marked")

	q.Dismiss(id)
	assert.Empty(t, v.View())
}

func TestToastView_Overlay_bottom_right(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()
	q.Infof("hi")

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	out := tuitest.StripANSI(NewToastView(q, 0).Overlay(bg, 80, 24, 1))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)

	// Toast box is three rows tall and ends one row above the bottom.
	assert.Contains(t, lines[21], "ℹ hi")
	assert.Equal(t, strings.Repeat(".", 80), lines[23])
	assert.True(t, strings.HasPrefix(lines[21], "...."))
	assert.True(t, strings.HasSuffix(lines[21], "."))
}

func TestToastView_render_panic_drops_only_that_toast(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()

	q.Infof("fine")
	q.Errorf("explodes")

	prev := toastRenderer
	toastRenderer = func(e notify.Entry) string {
		if e.Message == "explodes" {
			panic("bad style")
		}
		return prev(e)
	}
	t.Cleanup(func() { toastRenderer = prev })

	var out string
	require.NotPanics(t, func() { out = tuitest.StripANSI(NewToastView(q, 0).View()) })
	assert.Contains(t, out, "fine")
	assert.NotContains(t, out, "explodes")
}

func TestToastView_draws_newest_up_to_limit(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()

	for _, msg := range []string{"one", "two", "three", "four"} {
		q.Infof("%s", msg)
	}

	out := tuitest.StripANSI(NewToastView(q, 2).View())
	assert.NotContains(t, out, "one")
	assert.NotContains(t, out, "two")
	assert.Contains(t, out, "three")
	assert.Contains(t, out, "four")
	assert.Equal(t, 4, q.Len(), "hidden toasts stay queued")

	assert.Contains(t, tuitest.StripANSI(NewToastView(q, 0).View()), "one")
}
