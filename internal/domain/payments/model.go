package payments

import (
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/projects"
	"time"
)

// Payment is one milestone/invoice row for a project. PublicID is the
// identifier used by the unauthenticated invoice route.
type Payment struct {
	ID       uint   `gorm:"primaryKey"`
	PublicID string `gorm:"column:public_id;type:varchar(36);not null;uniqueIndex:idx_payments_public_id"`

	UserID    uint             `gorm:"not null;index;uniqueIndex:idx_payments_user_invoice"`
	ClientID  uint             `gorm:"not null;index"`
	Client    clients.Client   `gorm:"constraint:OnDelete:CASCADE"`
	ProjectID uint             `gorm:"not null;index"`
	Project   projects.Project `gorm:"constraint:OnDelete:CASCADE"`

	Title      string
	Amount     float64 `gorm:"not null"`
	AmountPaid float64 `gorm:"column:amount_paid;not null;default:0"`
	Currency   string  `gorm:"type:varchar(3);not null;default:'USD'"`
	Status     string  `gorm:"type:varchar(20);not null;default:'pending';index"`

	DueDate  *time.Time `gorm:"column:due_date;index"`
	PaidDate *time.Time `gorm:"column:paid_date"`

	// Unique per user; rows without a number stay outside the index.
	InvoiceNumber *string `gorm:"column:invoice_number;index;uniqueIndex:idx_payments_user_invoice"`

	StripePaymentIntentID *string `gorm:"column:stripe_payment_intent_id"`

	LineItems []PaymentLineItem `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentLineItem struct {
	ID          uint    `gorm:"primaryKey"`
	PaymentID   uint    `gorm:"not null;index"`
	Description string  `gorm:"not null"`
	Quantity    int     `gorm:"not null;default:1"`
	UnitAmount  float64 `gorm:"column:unit_amount;not null"`
}
