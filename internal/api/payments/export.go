package payments

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// GET /payments/export - CSV of all payment rows for the caller.
func ExportCSV(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []payments.Payment
	if err := userPaymentsQuery(database.DB, userID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"invoice_number", "title", "amount", "amount_paid", "currency", "status", "due_date", "paid_date", "created_at"})

	for _, p := range list {
		invoiceNumber := ""
		if p.InvoiceNumber != nil {
			invoiceNumber = *p.InvoiceNumber
		}
		_ = w.Write([]string{
			invoiceNumber,
			p.Title,
			fmt.Sprintf("%.2f", p.Amount),
			fmt.Sprintf("%.2f", p.AmountPaid),
			p.Currency,
			p.Status,
			formatDate(p.DueDate),
			formatDate(p.PaidDate),
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
