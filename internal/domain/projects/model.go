package projects

import (
	"freelanceros/internal/domain/clients"
	"time"
)

// Project statuses. Transitions are free-form: any status may be set from
// any other via a direct update.
const (
	StatusLead      = "lead"
	StatusActive    = "active"
	StatusWaiting   = "waiting"
	StatusCompleted = "completed"
)

type Project struct {
	ID       uint           `gorm:"primaryKey"`
	UserID   uint           `gorm:"not null;index"`
	ClientID uint           `gorm:"not null;index"`
	Client   clients.Client `gorm:"constraint:OnDelete:CASCADE"`

	Name        string `gorm:"not null"`
	Description string
	Status      string `gorm:"type:varchar(20);not null;default:'lead'"`

	StartDate *time.Time
	Deadline  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusLead, StatusActive, StatusWaiting, StatusCompleted:
		return true
	}
	return false
}
