package payments

import (
	"math"
	"time"
)

const (
	StatusPending   = "pending"
	StatusPartial   = "partial"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

// DeriveStatus computes a payment status from its amounts and due date.
// A due date equal to now is not yet overdue.
func DeriveStatus(amount, amountPaid float64, dueDate *time.Time, now time.Time) string {
	if amountPaid >= amount {
		return StatusPaid
	}
	if amountPaid > 0 {
		return StatusPartial
	}
	if dueDate != nil && dueDate.Before(now) {
		return StatusOverdue
	}
	return StatusPending
}

// ClampPaid caps amount_paid at amount so a recorded payment can never
// exceed the invoiced total.
func ClampPaid(amount, amountPaid float64) float64 {
	if amountPaid > amount {
		return amount
	}
	if amountPaid < 0 {
		return 0
	}
	return amountPaid
}

// Cents converts a currency amount to integer cents for the payment
// provider. Rounds to the nearest cent: float subtraction leaves residue
// that plain truncation would turn into a missing cent.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// DaysOverdue reports how many whole days past due the payment is.
func DaysOverdue(dueDate time.Time, now time.Time) int {
	if !dueDate.Before(now) {
		return 0
	}
	return int(now.Sub(dueDate).Hours() / 24)
}
