package payments

import (
	"fmt"
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/api/projects"
	"freelanceros/internal/domain/payments"
	domainprojects "freelanceros/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

func toLineItemDTOs(items []payments.PaymentLineItem) []LineItemDTO {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		out = append(out, LineItemDTO{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitAmount:  li.UnitAmount,
		})
	}
	return out
}

func toPaymentDTO(p payments.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID,
		PublicID:      p.PublicID,
		ProjectID:     p.ProjectID,
		ClientID:      p.ClientID,
		Title:         p.Title,
		Amount:        p.Amount,
		AmountPaid:    p.AmountPaid,
		Currency:      p.Currency,
		Status:        p.Status,
		DueDate:       p.DueDate,
		PaidDate:      p.PaidDate,
		InvoiceNumber: p.InvoiceNumber,
		LineItems:     toLineItemDTOs(p.LineItems),
		CreatedAt:     p.CreatedAt,
	}
}

// GET /payments?project_id=&status=
func ListPayments(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := userPaymentsQuery(database.DB, userID).Preload("LineItems")
	if projectID := c.Query("project_id"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var list []payments.Payment
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]PaymentDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /payments/:id
func GetPayment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p payments.Payment
	if err := database.DB.Preload("LineItems").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	c.JSON(http.StatusOK, toPaymentDTO(p))
}

// POST /payments
func CreatePayment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	var proj domainprojects.Project
	if err := database.DB.
		Where("id = ? AND user_id = ?", req.ProjectID, userID).
		First(&proj).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	now := time.Now()
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	p := payments.Payment{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		ClientID:  proj.ClientID,
		ProjectID: proj.ID,
		Title:     req.Title,
		Amount:    req.Amount,
		Currency:  currency,
		Status:    payments.DeriveStatus(req.Amount, 0, req.DueDate, now),
		DueDate:   req.DueDate,
	}

	if req.InvoiceNumber != nil && *req.InvoiceNumber != "" {
		p.InvoiceNumber = req.InvoiceNumber
	} else if req.WithInvoice {
		num := NextInvoiceNumber(database.DB, userID, now)
		p.InvoiceNumber = &num
	}

	for _, li := range req.LineItems {
		qty := li.Quantity
		if qty <= 0 {
			qty = 1
		}
		p.LineItems = append(p.LineItems, payments.PaymentLineItem{
			Description: li.Description,
			Quantity:    qty,
			UnitAmount:  li.UnitAmount,
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		desc := fmt.Sprintf("Payment of %.2f %s added", p.Amount, p.Currency)
		return projects.LogEvent(tx, userID, proj.ID, domainprojects.EventPayment, desc)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	c.JSON(http.StatusCreated, toPaymentDTO(p))
}

// PUT /payments/:id
func UpdatePayment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var p payments.Payment
	if err := database.DB.Preload("LineItems").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	amount := p.Amount
	dueDate := p.DueDate

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
			return
		}
		amount = *req.Amount
		updates["amount"] = amount
	}
	if req.Currency != nil && len(*req.Currency) == 3 {
		updates["currency"] = *req.Currency
	}
	if req.DueDate != nil {
		dueDate = req.DueDate
		updates["due_date"] = *req.DueDate
	}
	if req.InvoiceNumber != nil {
		updates["invoice_number"] = *req.InvoiceNumber
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, toPaymentDTO(p))
		return
	}

	// Re-derive display status unless the provider already settled it.
	if p.Status != payments.StatusCancelled && p.Status != payments.StatusPaid {
		updates["status"] = payments.DeriveStatus(amount, p.AmountPaid, dueDate, time.Now())
	}

	if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	c.JSON(http.StatusOK, toPaymentDTO(p))
}

// POST /payments/:id/record - a manual payment received outside Stripe.
func RecordPayment(c *gin.Context) {
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

	if p.Status == payments.StatusCancelled {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment is cancelled"})
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	now := time.Now()
	paid := payments.ClampPaid(p.Amount, p.AmountPaid+req.Amount)
	status := payments.DeriveStatus(p.Amount, paid, p.DueDate, now)

	updates := map[string]interface{}{
		"amount_paid": paid,
		"status":      status,
	}
	if status == payments.StatusPaid {
		updates["paid_date"] = now
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		desc := fmt.Sprintf("Received %.2f %s (%s)", req.Amount, p.Currency, status)
		return projects.LogEvent(tx, userID, p.ProjectID, domainprojects.EventPayment, desc)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	p.AmountPaid = paid
	p.Status = status
	if status == payments.StatusPaid {
		p.PaidDate = &now
	}

	c.JSON(http.StatusOK, toPaymentDTO(p))
}

// POST /payments/:id/cancel
func CancelPayment(c *gin.Context) {
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

	if p.Status == payments.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Paid payments cannot be cancelled"})
		return
	}

	if err := database.DB.Model(&p).
		Update("status", payments.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment cancelled"})
}

// DELETE /payments/:id
func DeletePayment(c *gin.Context) {
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

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", p.ID).Delete(&payments.PaymentLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
