package reminders

import "time"

// SnoozeTarget resolves where a snooze moves the reminder date. An explicit
// target wins; otherwise the reminder moves forward by days from the later
// of now and its current date, so snoozing never moves a reminder backward.
func SnoozeTarget(now, current time.Time, days int, until *time.Time) time.Time {
	if until != nil {
		return *until
	}
	if days <= 0 {
		days = 1
	}
	base := now
	if current.After(now) {
		base = current
	}
	return base.AddDate(0, 0, days)
}

// IsDue reports whether the reminder should be surfaced to the user.
func IsDue(r Reminder, now time.Time) bool {
	if r.IsSent {
		return false
	}
	return !r.ReminderDate.After(now)
}
