package reminders

import (
	"fmt"
	"net/http"
	"time"

	"freelanceros/database"
	"freelanceros/internal/api/projects"
	"freelanceros/internal/domain/clients"
	domainprojects "freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/reminders"

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

func toReminderDTO(r reminders.Reminder, now time.Time) ReminderDTO {
	return ReminderDTO{
		ID:           r.ID,
		Title:        r.Title,
		ReminderDate: r.ReminderDate,
		ReminderType: r.ReminderType,
		IsSent:       r.IsSent,
		IsDue:        reminders.IsDue(r, now),
		SnoozedUntil: r.SnoozedUntil,
		ProjectID:    r.ProjectID,
		ClientID:     r.ClientID,
		CreatedAt:    r.CreatedAt,
	}
}

func findUserReminder(c *gin.Context, userID uint) (reminders.Reminder, bool) {
	var r reminders.Reminder
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&r).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return r, false
	}
	return r, true
}

// GET /reminders?due=true - "due" is computed at read time, there is no
// background scheduler.
func ListReminders(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	now := time.Now()
	q := database.DB.Model(&reminders.Reminder{}).Where("user_id = ?", userID)
	if c.Query("due") == "true" {
		q = q.Where("is_sent = ? AND reminder_date <= ?", false, now)
	}

	var list []reminders.Reminder
	if err := q.Order("reminder_date ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reminders"})
		return
	}

	out := make([]ReminderDTO, 0, len(list))
	for _, r := range list {
		out = append(out, toReminderDTO(r, now))
	}
	c.JSON(http.StatusOK, out)
}

// POST /reminders
func CreateReminder(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rtype := req.ReminderType
	if rtype == "" {
		rtype = reminders.TypeFollowUp
	}
	if !reminders.ValidType(rtype) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reminder type"})
		return
	}

	if req.ProjectID != nil {
		var proj domainprojects.Project
		if err := database.DB.
			Where("id = ? AND user_id = ?", *req.ProjectID, userID).
			First(&proj).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
	}
	if req.ClientID != nil {
		var cl clients.Client
		if err := database.DB.
			Where("id = ? AND user_id = ?", *req.ClientID, userID).
			First(&cl).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
	}

	r := reminders.Reminder{
		UserID:       userID,
		Title:        req.Title,
		ReminderDate: req.ReminderDate,
		ReminderType: rtype,
		ProjectID:    req.ProjectID,
		ClientID:     req.ClientID,
	}

	if err := database.DB.Create(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusCreated, toReminderDTO(r, time.Now()))
}

// POST /reminders/:id/done
func MarkDone(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	r, ok := findUserReminder(c, userID)
	if !ok {
		return
	}

	if err := database.DB.Model(&r).Update("is_sent", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}
	r.IsSent = true

	c.JSON(http.StatusOK, toReminderDTO(r, time.Now()))
}

// POST /reminders/:id/snooze - moves reminder_date forward by N days or to
// an explicit target, and re-arms the reminder.
func Snooze(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	r, ok := findUserReminder(c, userID)
	if !ok {
		return
	}

	var req SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Days <= 0 && req.Until == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide days or an explicit target date"})
		return
	}

	now := time.Now()
	target := reminders.SnoozeTarget(now, r.ReminderDate, req.Days, req.Until)
	if !target.After(r.ReminderDate) && req.Until != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Snooze target must be after the current reminder date"})
		return
	}

	if err := database.DB.Model(&r).Updates(map[string]interface{}{
		"reminder_date": target,
		"snoozed_until": target,
		"is_sent":       false,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to snooze reminder"})
		return
	}

	r.ReminderDate = target
	r.SnoozedUntil = &target
	r.IsSent = false

	c.JSON(http.StatusOK, toReminderDTO(r, now))
}

// POST /reminders/:id/reschedule - a fresh date wipes any snooze state.
func Reschedule(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	r, ok := findUserReminder(c, userID)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&r).Updates(map[string]interface{}{
		"reminder_date": req.ReminderDate,
		"snoozed_until": nil,
		"is_sent":       false,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule reminder"})
		return
	}

	r.ReminderDate = req.ReminderDate
	r.SnoozedUntil = nil
	r.IsSent = false

	c.JSON(http.StatusOK, toReminderDTO(r, time.Now()))
}

// POST /reminders/:id/send - emails the linked client now and marks the
// reminder sent.
func SendNow(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	r, ok := findUserReminder(c, userID)
	if !ok {
		return
	}

	if r.ClientID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Reminder has no client to notify"})
		return
	}

	var cl clients.Client
	if err := database.DB.First(&cl, *r.ClientID).Error; err != nil || cl.Email == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Client has no email address"})
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nA quick nudge: %s", cl.Name, r.Title)
	if err := sendReminderMail(cl.Email, r.Title, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reminder email"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&r).Update("is_sent", true).Error; err != nil {
			return err
		}
		if r.ProjectID != nil {
			desc := fmt.Sprintf("Reminder sent to %s: %s", cl.Name, r.Title)
			return projects.LogEvent(tx, userID, *r.ProjectID, domainprojects.EventReminder, desc)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}
	r.IsSent = true

	c.JSON(http.StatusOK, toReminderDTO(r, time.Now()))
}

// DELETE /reminders/:id
func DeleteReminder(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	r, ok := findUserReminder(c, userID)
	if !ok {
		return
	}

	if err := database.DB.Delete(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
