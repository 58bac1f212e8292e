package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnoozeTarget(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("days from now for an overdue reminder", func(t *testing.T) {
		overdue := now.AddDate(0, 0, -2)
		require.Equal(t, now.AddDate(0, 0, 3), SnoozeTarget(now, overdue, 3, nil))
	})

	t.Run("days from the current date for a future reminder", func(t *testing.T) {
		future := now.AddDate(0, 0, 5)
		require.Equal(t, future.AddDate(0, 0, 3), SnoozeTarget(now, future, 3, nil))
	})

	t.Run("explicit target wins over days", func(t *testing.T) {
		until := now.AddDate(0, 1, 0)
		require.Equal(t, until, SnoozeTarget(now, now, 3, &until))
	})

	t.Run("non-positive days fall back to one day", func(t *testing.T) {
		require.Equal(t, now.AddDate(0, 0, 1), SnoozeTarget(now, now, 0, nil))
		require.Equal(t, now.AddDate(0, 0, 1), SnoozeTarget(now, now, -5, nil))
	})
}

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.True(t, IsDue(Reminder{ReminderDate: now}, now))
	require.True(t, IsDue(Reminder{ReminderDate: now.AddDate(0, 0, -2)}, now))
	require.False(t, IsDue(Reminder{ReminderDate: now.AddDate(0, 0, 1)}, now))
	require.False(t, IsDue(Reminder{ReminderDate: now.AddDate(0, 0, -2), IsSent: true}, now))
}
