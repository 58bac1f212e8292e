package clients

import (
	"freelanceros/internal/domain/users"
	"time"
)

// Client is one customer of a freelancer. The same email may exist for
// different users, but not twice for the same user.
type Client struct {
	ID     uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"not null;index;uniqueIndex:idx_clients_user_email"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE"`

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null;uniqueIndex:idx_clients_user_email"`
	Company string
	Notes   string

	LastContactDate *time.Time `gorm:"column:last_contact_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
