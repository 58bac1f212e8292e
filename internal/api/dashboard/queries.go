package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/projects"

	"gorm.io/gorm"
)

// Projects with no client contact for this long are flagged as ghosting
// risks.
const ghostingThresholdDays = 14

// PaymentRisks lists overdue, not fully paid, non-cancelled payments ranked
// by how late they are and how much is at stake.
func PaymentRisks(db *gorm.DB, userID uint, now time.Time) ([]RiskItem, error) {
	var rows []payments.Payment
	err := db.Model(&payments.Payment{}).
		Preload("Project").
		Preload("Client").
		Where("user_id = ? AND status NOT IN ?", userID, []string{payments.StatusCancelled, payments.StatusPaid}).
		Where("amount_paid < amount AND due_date IS NOT NULL AND due_date < ?", now).
		Order("due_date ASC, amount DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RiskItem, 0, len(rows))
	for _, p := range rows {
		days := payments.DaysOverdue(*p.DueDate, now)
		out = append(out, RiskItem{
			RiskType:    "payment",
			ProjectID:   p.ProjectID,
			ProjectName: p.Project.Name,
			ClientName:  p.Client.Name,
			Metadata:    fmt.Sprintf("%d days overdue • $%s", days, formatAmount(p.Amount)),
		})
	}
	return out, nil
}

// GhostingRisks lists in-flight projects whose client has not been heard
// from for ghostingThresholdDays.
func GhostingRisks(db *gorm.DB, userID uint, now time.Time) ([]RiskItem, error) {
	var rows []projects.Project
	err := db.Model(&projects.Project{}).
		Preload("Client").
		Where("user_id = ? AND status IN ?", userID, []string{projects.StatusActive, projects.StatusWaiting}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := []RiskItem{}
	for _, p := range rows {
		if p.Client.LastContactDate == nil {
			continue
		}
		days := int(now.Sub(*p.Client.LastContactDate).Hours() / 24)
		if days < ghostingThresholdDays {
			continue
		}
		out = append(out, RiskItem{
			RiskType:    "ghosting",
			ProjectID:   p.ID,
			ProjectName: p.Name,
			ClientName:  p.Client.Name,
			Metadata:    fmt.Sprintf("Last contact %d days ago", days),
		})
	}
	return out, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
