package clients

import (
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/access"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/reminders"
	"freelanceros/internal/domain/scope"
	"freelanceros/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func toClientDTO(cl clients.Client, projectCount int64) ClientDTO {
	return ClientDTO{
		ID:              cl.ID,
		Name:            cl.Name,
		Email:           cl.Email,
		Company:         cl.Company,
		Notes:           cl.Notes,
		LastContactDate: cl.LastContactDate,
		ProjectCount:    projectCount,
		CreatedAt:       cl.CreatedAt,
	}
}

// GET /clients
func ListClients(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []clients.Client
	if err := userClientsQuery(database.DB, userID).
		Order("name ASC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}

	out := make([]ClientDTO, 0, len(list))
	for _, cl := range list {
		out = append(out, toClientDTO(cl, projectCount(database.DB, cl.ID)))
	}

	c.JSON(http.StatusOK, out)
}

// GET /clients/:id
func GetClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cl clients.Client
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&cl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, toClientDTO(cl, projectCount(database.DB, cl.ID)))
}

// POST /clients
func CreateClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// plan quota
	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	policy := access.ComputePolicy(time.Now(), user)
	if policy.Limits != nil {
		var n int64
		userClientsQuery(database.DB, userID).Count(&n)
		if n >= int64(policy.Limits.MaxClients) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Client limit reached for your current plan"})
			return
		}
	}

	var existing int64
	userClientsQuery(database.DB, userID).
		Where("email = ?", req.Email).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A client with this email already exists"})
		return
	}

	cl := clients.Client{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Notes:   req.Notes,
	}

	if err := database.DB.Create(&cl).Error; err != nil {
		// unique (user_id, email) race
		c.JSON(http.StatusConflict, gin.H{"error": "A client with this email already exists"})
		return
	}

	c.JSON(http.StatusCreated, toClientDTO(cl, 0))
}

// PUT /clients/:id
func UpdateClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cl clients.Client
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&cl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != cl.Email {
		var existing int64
		userClientsQuery(database.DB, userID).
			Where("email = ? AND id <> ?", *req.Email, cl.ID).
			Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "A client with this email already exists"})
			return
		}
		updates["email"] = *req.Email
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&cl).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
			return
		}
	}

	c.JSON(http.StatusOK, toClientDTO(cl, projectCount(database.DB, cl.ID)))
}

// POST /clients/:id/log-contact
func LogContact(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cl clients.Client
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&cl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	now := time.Now()
	if err := database.DB.Model(&cl).
		Update("last_contact_date", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact logged", "last_contact_date": now})
}

// DELETE /clients/:id - removes the client and everything hanging off it.
func DeleteClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cl clients.Client
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&cl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var projIDs []uint
		if err := tx.Model(&projects.Project{}).
			Where("client_id = ?", cl.ID).
			Pluck("id", &projIDs).Error; err != nil {
			return err
		}

		if len(projIDs) > 0 {
			if err := tx.Where("project_id IN ?", projIDs).Delete(&projects.TimelineEvent{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id IN ?", projIDs).Delete(&scope.ScopeVersion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("client_id = ?", cl.ID).Delete(&payments.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", cl.ID).Delete(&reminders.Reminder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", cl.ID).Delete(&projects.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cl).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
