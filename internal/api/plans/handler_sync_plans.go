package plans

import (
	"net/http"
	"os"
	"strings"

	"freelanceros/database"
	"freelanceros/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

// POST /admin/sync-plans - mirrors active recurring Stripe prices into the
// plans table, keyed by stripe_price_id.
func SyncPlansFromStripe(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	targetProductID := os.Getenv("STRIPE_PRODUCT_ID")

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	created := 0
	updated := 0
	skipped := 0

	for it.Next() {
		p := it.Price()

		if !p.Active || p.Recurring == nil || p.Product == nil || !p.Product.Active {
			skipped++
			continue
		}

		if targetProductID != "" && p.Product.ID != targetProductID {
			skipped++
			continue
		}

		tier := strings.ToLower(strings.TrimSpace(p.Metadata["tier"]))

		plan := plans.Plan{
			Name:          p.Product.Name,
			Price:         float64(p.UnitAmount) / 100.0,
			Currency:      strings.ToUpper(string(p.Currency)),
			StripePriceID: p.ID,
			Interval:      string(p.Recurring.Interval),
			Tier:          tier,
		}

		var existing plans.Plan
		err := database.DB.Where("stripe_price_id = ?", p.ID).First(&existing).Error
		if err != nil {
			if err := database.DB.Create(&plan).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan", "details": err.Error()})
				return
			}
			created++
			continue
		}

		if err := database.DB.Model(&existing).Updates(map[string]interface{}{
			"name":     plan.Name,
			"price":    plan.Price,
			"currency": plan.Currency,
			"interval": plan.Interval,
			"tier":     plan.Tier,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan", "details": err.Error()})
			return
		}
		updated++
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Stripe prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"updated": updated,
		"skipped": skipped,
	})
}
