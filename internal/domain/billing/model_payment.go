package billing

import (
	"freelanceros/internal/domain/plans"
	"freelanceros/internal/domain/users"
	"time"
)

// Payment is one receipt for the app's own subscription billing (not a
// client invoice - those live in internal/domain/payments).
type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint
	User                 users.User
	PlanID               *uint
	Plan                 *plans.Plan
	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	Amount               float64
	Currency             string `gorm:"type:varchar(3);not null;default:'USD'"`
	Status               string
	InvoiceID            *string
	ReceiptURL           *string
	CreatedAt            time.Time
}
