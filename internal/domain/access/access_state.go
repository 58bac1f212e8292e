package access

import (
	"time"

	"freelanceros/internal/domain/plans"
	"freelanceros/internal/domain/users"
	"freelanceros/internal/infra/stripe"
)

// Effective access for UI/product: trial|full|limited|locked
func ComputeEffectiveAccessState(now time.Time, u users.User) AccessState {
	// Active trial
	if u.TrialEndAt != nil && now.Before(*u.TrialEndAt) {
		return AccessTrial
	}

	// No subscription at all
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return AccessLocked
	}

	// Subscription exists -> interpret Stripe status
	switch stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus) {
	case "active", "trialing":
		switch plans.PlanTier(u.Plan) {
		case plans.TierProfessional, plans.TierStudio:
			return AccessFull
		default:
			return AccessLimited
		}

	case "past_due":
		return AccessLimited

	case "canceled":
		// Access continues until the paid-through end date
		if u.CurrentPeriodEnd != nil && now.Before(*u.CurrentPeriodEnd) {
			switch plans.PlanTier(u.Plan) {
			case plans.TierProfessional, plans.TierStudio:
				return AccessFull
			default:
				return AccessLimited
			}
		}
		return AccessLocked

	default:
		return AccessLocked
	}
}
