package users

import (
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/access"
	"freelanceros/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	policy := access.ComputePolicy(now, user)

	var limits *LimitsDTO
	if policy.Limits != nil {
		limits = &LimitsDTO{
			MaxClients:           policy.Limits.MaxClients,
			MaxProjects:          policy.Limits.MaxProjects,
			ShowPlatformBranding: policy.Limits.ShowPlatformBranding,
		}
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
			Branding:   BuildBranding(user),
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(user),
			Trial:        BuildTrialDTO(now, user.TrialStartAt, user.TrialEndAt),
		},
		Access: AccessDTO{
			State:        string(policy.State),
			Capabilities: policy.Capabilities,
			Limits:       limits,
		},
	}

	c.JSON(http.StatusOK, resp)
}

// GET /verify?token=...
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var verif users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&verif).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", verif.UserID).
		Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&verif)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// PUT /settings - profile and invoice branding.
func UpdateSettings(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Name            *string `json:"name"`
		Lastname        *string `json:"lastname"`
		BusinessName    *string `json:"business_name"`
		LogoURL         *string `json:"logo_url"`
		AccentColor     *string `json:"accent_color"`
		InvoiceFooter   *string `json:"invoice_footer"`
		DefaultCurrency *string `json:"default_currency"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Lastname != nil {
		updates["lastname"] = *body.Lastname
	}
	if body.BusinessName != nil {
		updates["business_name"] = *body.BusinessName
	}
	if body.LogoURL != nil {
		updates["logo_url"] = *body.LogoURL
	}
	if body.AccentColor != nil {
		updates["accent_color"] = *body.AccentColor
	}
	if body.InvoiceFooter != nil {
		updates["invoice_footer"] = *body.InvoiceFooter
	}
	if body.DefaultCurrency != nil && len(*body.DefaultCurrency) == 3 {
		updates["default_currency"] = *body.DefaultCurrency
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}
