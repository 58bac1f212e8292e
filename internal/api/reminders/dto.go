package reminders

import "time"

// ---------- requests

type CreateReminderRequest struct {
	Title        string     `json:"title" binding:"required"`
	ReminderDate time.Time  `json:"reminder_date" binding:"required"`
	ReminderType string     `json:"reminder_type"`
	ProjectID    *uint      `json:"project_id"`
	ClientID     *uint      `json:"client_id"`
}

type SnoozeRequest struct {
	Days  int        `json:"days"`
	Until *time.Time `json:"until"`
}

type RescheduleRequest struct {
	ReminderDate time.Time `json:"reminder_date" binding:"required"`
}

// ---------- responses

type ReminderDTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	ReminderDate time.Time  `json:"reminder_date"`
	ReminderType string     `json:"reminder_type"`
	IsSent       bool       `json:"is_sent"`
	IsDue        bool       `json:"is_due"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
	ProjectID    *uint      `json:"project_id,omitempty"`
	ClientID     *uint      `json:"client_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
