package access

import (
	"testing"
	"time"

	"freelanceros/internal/domain/plans"
	"freelanceros/internal/domain/users"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func subscribedUser(tier, stripeStatus string) users.User {
	sub := "sub_123"
	return users.User{
		Plan:                     &plans.Plan{Name: tier, Tier: tier},
		SubscriptionId:           &sub,
		StripeSubscriptionStatus: strPtr(stripeStatus),
	}
}

func TestComputePolicy(t *testing.T) {
	now := time.Now()

	t.Run("active trial", func(t *testing.T) {
		end := now.AddDate(0, 0, 7)
		p := ComputePolicy(now, users.User{TrialEndAt: &end})
		require.Equal(t, AccessTrial, p.State)
		require.True(t, p.Can("edit"))
		require.True(t, p.Can("scope_sharing"))
		require.False(t, p.Can("csv_export"))
		require.NotNil(t, p.Limits)
		require.Equal(t, 3, p.Limits.MaxClients)
	})

	t.Run("expired trial without subscription locks", func(t *testing.T) {
		end := now.AddDate(0, 0, -1)
		p := ComputePolicy(now, users.User{TrialEndAt: &end})
		require.Equal(t, AccessLocked, p.State)
		require.False(t, p.Can("edit"))
		require.Equal(t, 0, p.Limits.MaxClients)
	})

	t.Run("active professional", func(t *testing.T) {
		p := ComputePolicy(now, subscribedUser(plans.TierProfessional, "active"))
		require.Equal(t, AccessFull, p.State)
		require.True(t, p.Can("csv_export"))
		require.False(t, p.Can("custom_branding"))
		require.Nil(t, p.Limits)
	})

	t.Run("active studio gets branding", func(t *testing.T) {
		p := ComputePolicy(now, subscribedUser(plans.TierStudio, "active"))
		require.True(t, p.Can("custom_branding"))
	})

	t.Run("past due is limited", func(t *testing.T) {
		p := ComputePolicy(now, subscribedUser(plans.TierProfessional, "past_due"))
		require.Equal(t, AccessLimited, p.State)
		require.True(t, p.Can("edit"))
		require.False(t, p.Can("scope_sharing"))
		require.Equal(t, 10, p.Limits.MaxClients)
	})

	t.Run("cancelled keeps access until period end", func(t *testing.T) {
		u := subscribedUser(plans.TierProfessional, "canceled")
		end := now.AddDate(0, 0, 10)
		u.CurrentPeriodEnd = &end
		p := ComputePolicy(now, u)
		require.Equal(t, AccessFull, p.State)

		past := now.AddDate(0, 0, -10)
		u.CurrentPeriodEnd = &past
		p = ComputePolicy(now, u)
		require.Equal(t, AccessLocked, p.State)
	})
}

func TestPlanTierFallsBackToPrice(t *testing.T) {
	require.Equal(t, plans.TierStudio, plans.PlanTier(&plans.Plan{Price: 79}))
	require.Equal(t, plans.TierProfessional, plans.PlanTier(&plans.Plan{Price: 29}))
	require.Equal(t, plans.TierStarter, plans.PlanTier(&plans.Plan{Price: 9}))
	require.Equal(t, plans.TierNone, plans.PlanTier(nil))
}
