package plans

import "strings"

// Tier constants (single source of truth)
const (
	TierNone         = "none"
	TierStarter      = "starter"
	TierProfessional = "professional"
	TierStudio       = "studio"
)

// PlanTier returns the effective tier for a plan.
// Priority:
// 1. Explicit Tier stored in DB
// 2. Fallback inference by price (legacy safety net)
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierStarter, TierProfessional, TierStudio:
		return tier
	}

	return inferTierFromPrice(p.Price)
}

// inferTierFromPrice exists ONLY as a backward-compatibility fallback.
func inferTierFromPrice(price float64) string {
	switch {
	case price >= 49:
		return TierStudio
	case price >= 19:
		return TierProfessional
	default:
		return TierStarter
	}
}
