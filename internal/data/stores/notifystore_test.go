package stores

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/data/db"
)

func openStore(t *testing.T) *NotifyStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewNotifyStore(database)
}

func TestNotifyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and list", func(t *testing.T) {
		store := openStore(t)

		now := time.Now()
		id, err := store.Save(ctx, notify.Notification{
			Level:     notify.LevelError,
			Message:   "Server error. Please try again later.",
			CreatedAt: now,
		})
		require.NoError(t, err)
		assert.Positive(t, id)

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, notify.LevelError, items[0].Level)
		assert.Equal(t, "Server error. Please try again later.", items[0].Message)
		assert.Equal(t, id, items[0].ID)
		assert.True(t, now.Equal(items[0].CreatedAt))
	})

	t.Run("list returns newest first", func(t *testing.T) {
		store := openStore(t)

		base := time.Now()
		for i, msg := range []string{"first", "second", "third"} {
			_, err := store.Save(ctx, notify.Notification{
				Level:     notify.LevelInfo,
				Message:   msg,
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			})
			require.NoError(t, err)
		}

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "third", items[0].Message)
		assert.Equal(t, "second", items[1].Message)
		assert.Equal(t, "first", items[2].Message)
	})

	t.Run("same timestamp orders by id", func(t *testing.T) {
		store := openStore(t)

		now := time.Now()
		for _, msg := range []string{"a", "b"} {
			_, err := store.Save(ctx, notify.Notification{Level: notify.LevelInfo, Message: msg, CreatedAt: now})
			require.NoError(t, err)
		}

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[0].Message)
	})

	t.Run("clear deletes all", func(t *testing.T) {
		store := openStore(t)

		_, err := store.Save(ctx, notify.Notification{
			Level:     notify.LevelWarning,
			Message:   "Employee ID already exists",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		require.NoError(t, store.Clear(ctx))

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("count", func(t *testing.T) {
		store := openStore(t)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		for i := range 3 {
			_, err := store.Save(ctx, notify.Notification{
				Level:     notify.LevelInfo,
				Message:   "msg",
				CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
			})
			require.NoError(t, err)
		}

		count, err = store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("prune keeps newest", func(t *testing.T) {
		store := openStore(t)

		base := time.Now()
		for i, msg := range []string{"old", "middle", "new"} {
			_, err := store.Save(ctx, notify.Notification{
				Level:     notify.LevelSuccess,
				Message:   msg,
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			})
			require.NoError(t, err)
		}

		removed, err := store.Prune(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "new", items[0].Message)
		assert.Equal(t, "middle", items[1].Message)
	})

	t.Run("empty list returns empty slice", func(t *testing.T) {
		store := openStore(t)

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})

	t.Run("feeds bus history", func(t *testing.T) {
		store := openStore(t)
		q := notify.NewQueue()
		t.Cleanup(q.Close)
		bus := notify.NewBus(store, q)

		bus.Successf("Employee added successfully")

		history, err := bus.History(ctx)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, notify.LevelSuccess, history[0].Level)
	})
}

func TestIsCorruptionError(t *testing.T) {
	assert.False(t, IsCorruptionError(nil))
	assert.False(t, IsCorruptionError(errors.New("constraint failed")))
	assert.True(t, IsCorruptionError(errors.New("database disk image is malformed")))
	assert.False(t, IsBusyError(errors.New("database is locked")))
}

func TestRecoverFromCorruption(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, db.FileName)
	require.NoError(t, os.WriteFile(dbPath, []byte("garbage"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("wal"), 0o644))

	backup, err := RecoverFromCorruption(dir)
	require.NoError(t, err)
	require.NotEmpty(t, backup)

	assert.NoFileExists(t, dbPath)
	assert.NoFileExists(t, dbPath+"-wal")
	assert.FileExists(t, backup)
	assert.FileExists(t, backup+"-wal")

	database, err := db.Open(dir, db.DefaultOpenOptions())
	require.NoError(t, err)
	assert.NoError(t, database.Close())
}

func TestRecoverFromCorruption_no_database(t *testing.T) {
	backup, err := RecoverFromCorruption(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, backup)
}

func TestNotifyStore_Save_closed_database(t *testing.T) {
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	store := NewNotifyStore(database)
	require.NoError(t, database.Close())

	_, err = store.Save(context.Background(), notify.Notification{
		Level:     notify.LevelInfo,
		Message:   "late",
		CreatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert notification")
}
