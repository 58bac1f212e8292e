package plans

type Plan struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	Price         float64
	Currency      string `gorm:"type:varchar(3);not null;default:'USD'"`
	StripePriceID string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	Interval      string
	Tier          string `gorm:"column:tier"` // "starter" | "professional" | "studio"
}
