package reminders

import (
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/projects"
	"time"
)

const (
	TypePayment  = "payment"
	TypeDeadline = "deadline"
	TypeFollowUp = "follow_up"
)

// Reminder is a user-driven nudge. Nothing fires automatically: a reminder
// is "due" when its reminder_date has passed, computed at read time.
type Reminder struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`

	ProjectID *uint
	Project   *projects.Project `gorm:"constraint:OnDelete:CASCADE"`
	ClientID  *uint
	Client    *clients.Client `gorm:"constraint:OnDelete:CASCADE"`

	Title        string    `gorm:"not null"`
	ReminderDate time.Time `gorm:"column:reminder_date;not null;index"`
	ReminderType string    `gorm:"column:reminder_type;type:varchar(20);not null;default:'follow_up'"`

	IsSent       bool       `gorm:"column:is_sent;not null;default:false"`
	SnoozedUntil *time.Time `gorm:"column:snoozed_until"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidType(t string) bool {
	switch t {
	case TypePayment, TypeDeadline, TypeFollowUp:
		return true
	}
	return false
}
