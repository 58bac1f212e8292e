package access

import (
	"freelanceros/internal/domain/plans"
)

func CapabilitiesFor(state AccessState, plan *plans.Plan) []string {
	// locked: read-only
	if state == AccessLocked {
		return []string{}
	}

	if state == AccessLimited {
		return []string{"edit"}
	}

	// trial
	if state == AccessTrial {
		return []string{"edit", "scope_sharing"}
	}

	// full: tier-based
	switch plans.PlanTier(plan) {
	case plans.TierStarter:
		return []string{"edit", "scope_sharing"}
	case plans.TierProfessional:
		return []string{"edit", "scope_sharing", "csv_export"}
	case plans.TierStudio:
		return []string{"edit", "scope_sharing", "csv_export", "custom_branding"}
	default:
		return []string{"edit", "scope_sharing"}
	}
}
