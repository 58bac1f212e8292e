package payments

import (
	"fmt"
	"net/http"
	"net/smtp"
	"os"

	"freelanceros/config"
	"freelanceros/database"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// POST /payments/:id/send - emails the public invoice link to the client.
func SendInvoiceEmail(c *gin.Context) {
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

	var cl clients.Client
	if err := database.DB.First(&cl, p.ClientID).Error; err != nil || cl.Email == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Client has no email address"})
		return
	}

	link := fmt.Sprintf("%s/public/invoices/%s", config.APP_URL, p.PublicID)
	subject := "Your invoice"
	if p.InvoiceNumber != nil {
		subject = fmt.Sprintf("Invoice %s", *p.InvoiceNumber)
	}
	body := fmt.Sprintf("Hi %s,\n\nYou can view your invoice here:\n\n%s\n\nAmount due: %.2f %s",
		cl.Name, link, p.Amount-p.AmountPaid, p.Currency)

	if err := sendMail(cl.Email, subject, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invoice email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice sent", "link": link})
}

func sendMail(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
