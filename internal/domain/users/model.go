package users

import (
	"freelanceros/internal/domain/plans"
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	PlanID *uint
	Plan   *plans.Plan

	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	SubscriptionId    *string `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeCustomerID  *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	TrialStartAt *time.Time `gorm:"column:trial_start_at"`
	TrialEndAt   *time.Time `gorm:"column:trial_end_at"`

	StripeSubscriptionStatus *string `gorm:"column:stripe_subscription_status"`
	CurrentPeriodEnd         *time.Time `gorm:"column:current_period_end"`

	// Invoice branding, shown on the public invoice page.
	BusinessName    *string `gorm:"column:business_name"`
	LogoURL         *string `gorm:"column:logo_url"`
	AccentColor     *string `gorm:"column:accent_color;type:varchar(16)"`
	InvoiceFooter   *string `gorm:"column:invoice_footer"`
	DefaultCurrency string  `gorm:"column:default_currency;type:varchar(3);not null;default:'USD'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
