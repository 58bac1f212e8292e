package dashboard

import (
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/reminders"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// GET /dashboard/summary
func GetSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	db := database.DB
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var s Summary

	db.Model(&clients.Client{}).Where("user_id = ?", userID).Count(&s.TotalClients)
	db.Model(&projects.Project{}).
		Where("user_id = ? AND status = ?", userID, projects.StatusActive).
		Count(&s.ActiveProjects)

	// outstanding = invoiced minus received on open rows
	row := db.Model(&payments.Payment{}).
		Where("user_id = ? AND status NOT IN ?", userID, []string{payments.StatusCancelled, payments.StatusPaid}).
		Select("COALESCE(SUM(amount - amount_paid), 0)").
		Row()
	if err := row.Scan(&s.Outstanding); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}

	row = db.Model(&payments.Payment{}).
		Where("user_id = ? AND paid_date IS NOT NULL AND paid_date >= ?", userID, monthStart).
		Select("COALESCE(SUM(amount_paid), 0)").
		Row()
	if err := row.Scan(&s.CollectedMonth); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}

	db.Model(&payments.Payment{}).
		Where("user_id = ? AND status NOT IN ?", userID, []string{payments.StatusCancelled, payments.StatusPaid}).
		Where("amount_paid < amount AND due_date IS NOT NULL AND due_date < ?", now).
		Count(&s.OverduePayments)

	db.Model(&reminders.Reminder{}).
		Where("user_id = ? AND is_sent = ? AND reminder_date <= ?", userID, false, now).
		Count(&s.DueReminders)

	s.ProjectsPerState = map[string]int64{}
	for _, status := range []string{projects.StatusLead, projects.StatusActive, projects.StatusWaiting, projects.StatusCompleted} {
		var n int64
		db.Model(&projects.Project{}).
			Where("user_id = ? AND status = ?", userID, status).
			Count(&n)
		s.ProjectsPerState[status] = n
	}

	c.JSON(http.StatusOK, s)
}

// GET /dashboard/risks
func GetRisks(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	now := time.Now()

	paymentRisks, err := PaymentRisks(database.DB, userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load risks"})
		return
	}
	ghostingRisks, err := GhostingRisks(database.DB, userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load risks"})
		return
	}

	c.JSON(http.StatusOK, append(paymentRisks, ghostingRisks...))
}
