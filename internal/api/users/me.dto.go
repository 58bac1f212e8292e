package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
}

type UserDTO struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Lastname   string  `json:"lastname"`
	Role       string  `json:"role"`
	IsVerified bool    `json:"is_verified"`
	Branding   Branding `json:"branding"`
}

type Branding struct {
	BusinessName    *string `json:"business_name,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	AccentColor     *string `json:"accent_color,omitempty"`
	InvoiceFooter   *string `json:"invoice_footer,omitempty"`
	DefaultCurrency string  `json:"default_currency"`
}

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft *int       `json:"days_left"`
}

type AccessDTO struct {
	State        string     `json:"state"`
	Capabilities []string   `json:"capabilities"`
	Limits       *LimitsDTO `json:"limits,omitempty"`
}

type LimitsDTO struct {
	MaxClients           int  `json:"max_clients"`
	MaxProjects          int  `json:"max_projects"`
	ShowPlatformBranding bool `json:"show_platform_branding"`
}
