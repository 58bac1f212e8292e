package stripewebhooks

import (
	"fmt"
	"strconv"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// A settled intent is authoritative: amount_paid is forced to amount so the
// stored status and the derived status agree.
func handlePaymentIntentSucceeded(c *gin.Context, pi *stripe.PaymentIntent) error {
	if pi.ID == "" {
		return nil
	}

	paymentIDStr := ""
	if pi.Metadata != nil {
		paymentIDStr = pi.Metadata["payment_id"]
	}

	var p payments.Payment
	if paymentIDStr != "" {
		pid, err := strconv.ParseUint(paymentIDStr, 10, 64)
		if err != nil {
			// not one of ours; acknowledge
			return nil
		}
		if err := database.DB.Where("id = ?", uint(pid)).First(&p).Error; err != nil {
			return nil
		}
	} else {
		if err := database.DB.Where("stripe_payment_intent_id = ?", pi.ID).First(&p).Error; err != nil {
			return nil
		}
	}

	// redelivery: already settled
	if p.Status == payments.StatusPaid {
		return nil
	}

	now := time.Now()
	return database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"amount_paid":              p.Amount,
			"status":                   payments.StatusPaid,
			"paid_date":                now,
			"stripe_payment_intent_id": pi.ID,
		}
		if err := tx.Model(&payments.Payment{}).
			Where("id = ?", p.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark payment paid: %w", err)
		}

		desc := fmt.Sprintf("Payment of %.2f %s received via Stripe", p.Amount, p.Currency)
		return tx.Create(&projects.TimelineEvent{
			UserID:      p.UserID,
			ProjectID:   p.ProjectID,
			EventType:   projects.EventPayment,
			Description: desc,
		}).Error
	})
}
