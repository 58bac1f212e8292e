package projects

import "time"

// Timeline event types. Rows are append-only.
const (
	EventNote         = "note"
	EventReminder     = "reminder"
	EventPayment      = "payment"
	EventScope        = "scope"
	EventStatusChange = "status_change"
)

type TimelineEvent struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	ProjectID uint    `gorm:"not null;index"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE"`

	EventType   string `gorm:"type:varchar(20);not null;index"`
	Description string `gorm:"not null"`

	CreatedAt time.Time
}
