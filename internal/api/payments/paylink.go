package payments

import (
	"fmt"
	"net/http"
	"os"

	"freelanceros/database"
	"freelanceros/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

// POST /payments/:id/pay-link - creates a one-time PaymentIntent for the
// outstanding balance. The webhook closes the loop when the client pays.
func CreatePayLink(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p payments.Payment
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	if p.Status == payments.StatusCancelled || p.Status == payments.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment is already settled or cancelled"})
		return
	}

	outstanding := p.Amount - p.AmountPaid
	if outstanding <= 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Nothing outstanding on this payment"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(payments.Cents(outstanding)),
		Currency: stripe.String(p.Currency),
		Metadata: map[string]string{
			"payment_id": fmt.Sprint(p.ID),
			"user_id":    fmt.Sprint(userID),
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent", "details": err.Error()})
		return
	}

	if err := database.DB.Model(&p).
		Update("stripe_payment_intent_id", pi.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_intent_id": pi.ID,
		"client_secret":     pi.ClientSecret,
	})
}
