package payments

import (
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/access"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /public/invoices/:invoiceId - unauthenticated; accepts the payment's
// public UUID or a human-readable invoice number.
func GetPublicInvoice(c *gin.Context) {
	ref := c.Param("invoiceId")
	if ref == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var p payments.Payment
	q := database.DB.Preload("LineItems")
	if _, err := uuid.Parse(ref); err == nil {
		q = q.Where("public_id = ?", ref)
	} else {
		// Invoice numbers are only unique per user. A number held by more
		// than one user does not identify an invoice; those links must use
		// the public UUID.
		var n int64
		database.DB.Model(&payments.Payment{}).
			Where("invoice_number = ?", ref).
			Count(&n)
		if n != 1 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		q = q.Where("invoice_number = ?", ref)
	}
	if err := q.First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var owner users.User
	if err := database.DB.Preload("Plan").First(&owner, p.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var cl clients.Client
	_ = database.DB.First(&cl, p.ClientID).Error

	policy := access.ComputePolicy(time.Now(), owner)
	showPlatformBranding := policy.Limits != nil && policy.Limits.ShowPlatformBranding

	out := PublicInvoiceDTO{
		PublicID:             p.PublicID,
		InvoiceNumber:        p.InvoiceNumber,
		Title:                p.Title,
		Amount:               p.Amount,
		AmountPaid:           p.AmountPaid,
		Currency:             p.Currency,
		Status:               p.Status,
		DueDate:              p.DueDate,
		PaidDate:             p.PaidDate,
		LineItems:            toLineItemDTOs(p.LineItems),
		ClientName:           cl.Name,
		ShowPlatformBranding: showPlatformBranding,
		InvoiceFooter:        owner.InvoiceFooter,
	}

	// custom branding is a paid capability
	if policy.Can("custom_branding") {
		out.BusinessName = owner.BusinessName
		out.LogoURL = owner.LogoURL
		out.AccentColor = owner.AccentColor
	}

	c.JSON(http.StatusOK, out)
}
