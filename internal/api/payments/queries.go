package payments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"freelanceros/internal/domain/payments"

	"gorm.io/gorm"
)

func userPaymentsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&payments.Payment{}).
		Where("user_id = ?", userID)
}

// NextInvoiceNumber issues "INV-<year>-<n>" with n one past the highest
// suffix the caller has used this calendar year. Deleting an invoice can
// never reissue a number still assigned to a live row.
func NextInvoiceNumber(db *gorm.DB, userID uint, now time.Time) string {
	prefix := fmt.Sprintf("INV-%d-", now.Year())

	var numbers []string
	db.Model(&payments.Payment{}).
		Where("user_id = ? AND invoice_number LIKE ?", userID, prefix+"%").
		Pluck("invoice_number", &numbers)

	highest := 0
	for _, num := range numbers {
		suffix, err := strconv.Atoi(strings.TrimPrefix(num, prefix))
		if err != nil {
			continue
		}
		if suffix > highest {
			highest = suffix
		}
	}

	return fmt.Sprintf("%s%03d", prefix, highest+1)
}
