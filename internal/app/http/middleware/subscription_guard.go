package middleware

import (
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/access"
	"freelanceros/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Preload("Plan").Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		state := access.ComputeEffectiveAccessState(time.Now(), user)
		if state == access.AccessLocked {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
			})
			return
		}

		c.Next()
	}
}

// RequireCapability gates a route on the access policy, e.g. "csv_export".
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Preload("Plan").Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		policy := access.ComputePolicy(time.Now(), user)
		if !policy.Can(capability) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your current plan does not include this feature",
			})
			return
		}

		c.Next()
	}
}
