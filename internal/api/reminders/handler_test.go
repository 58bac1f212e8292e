package reminders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/reminders"
	"freelanceros/internal/domain/users"
	"freelanceros/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.GET("/reminders", ListReminders)
	r.POST("/reminders", CreateReminder)
	r.POST("/reminders/:id/done", MarkDone)
	r.POST("/reminders/:id/snooze", Snooze)
	r.POST("/reminders/:id/reschedule", Reschedule)
	r.DELETE("/reminders/:id", DeleteReminder)
	return r
}

func seedUser(t *testing.T) users.User {
	t.Helper()
	u := users.User{Name: "Owner", Email: "owner@example.com"}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func seedReminder(t *testing.T, userID uint, date time.Time, sent bool) reminders.Reminder {
	t.Helper()
	r := reminders.Reminder{
		UserID:       userID,
		Title:        "Chase the deposit",
		ReminderDate: date,
		ReminderType: reminders.TypePayment,
		IsSent:       sent,
	}
	require.NoError(t, database.DB.Create(&r).Error)
	return r
}

func TestCreateReminderDefaultsType(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	body, _ := json.Marshal(gin.H{
		"title":         "Check in with Acme",
		"reminder_date": time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/reminders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got ReminderDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, reminders.TypeFollowUp, got.ReminderType)
	require.False(t, got.IsSent)
	require.False(t, got.IsDue)
}

func TestCreateReminderRejectsUnknownType(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	body, _ := json.Marshal(gin.H{
		"title":         "Check in",
		"reminder_date": time.Now().Format(time.RFC3339),
		"reminder_type": "carrier_pigeon",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/reminders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDueReminders(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	now := time.Now()
	due := seedReminder(t, u.ID, now.AddDate(0, 0, -1), false)
	seedReminder(t, u.ID, now.AddDate(0, 0, 2), false)  // future
	seedReminder(t, u.ID, now.AddDate(0, 0, -3), true) // already handled

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/reminders?due=true", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []ReminderDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, due.ID, got[0].ID)
	require.True(t, got[0].IsDue)
}

func TestSnoozeMovesDateAndRearms(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	rem := seedReminder(t, u.ID, time.Now().AddDate(0, 0, -2), true)

	body, _ := json.Marshal(gin.H{"days": 3})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/reminders/%d/snooze", rem.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded reminders.Reminder
	require.NoError(t, database.DB.First(&reloaded, rem.ID).Error)
	require.False(t, reloaded.IsSent)
	require.NotNil(t, reloaded.SnoozedUntil)
	require.WithinDuration(t, time.Now().AddDate(0, 0, 3), reloaded.ReminderDate, 5*time.Second)
	require.WithinDuration(t, reloaded.ReminderDate, *reloaded.SnoozedUntil, time.Second)
}

func TestSnoozeFutureReminderMovesForward(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	rem := seedReminder(t, u.ID, time.Now().AddDate(0, 0, 5), false)

	body, _ := json.Marshal(gin.H{"days": 2})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/reminders/%d/snooze", rem.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded reminders.Reminder
	require.NoError(t, database.DB.First(&reloaded, rem.ID).Error)
	require.True(t, reloaded.ReminderDate.After(rem.ReminderDate))
	require.WithinDuration(t, time.Now().AddDate(0, 0, 7), reloaded.ReminderDate, 5*time.Second)
}

func TestSnoozeWithoutTargetIsRejected(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	rem := seedReminder(t, u.ID, time.Now(), false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/reminders/%d/snooze", rem.ID), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRescheduleClearsSnooze(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	snoozed := time.Now().AddDate(0, 0, 5)
	rem := reminders.Reminder{
		UserID:       u.ID,
		Title:        "Chase the deposit",
		ReminderDate: snoozed,
		ReminderType: reminders.TypePayment,
		SnoozedUntil: &snoozed,
	}
	require.NoError(t, database.DB.Create(&rem).Error)

	fresh := time.Now().AddDate(0, 0, 10).Truncate(time.Second)
	body, _ := json.Marshal(gin.H{"reminder_date": fresh.Format(time.RFC3339)})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/reminders/%d/reschedule", rem.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded reminders.Reminder
	require.NoError(t, database.DB.First(&reloaded, rem.ID).Error)
	require.Nil(t, reloaded.SnoozedUntil)
	require.WithinDuration(t, fresh, reloaded.ReminderDate, time.Second)
}

func TestMarkDone(t *testing.T) {
	testutil.SetupTestDB(t)
	u := seedUser(t)
	r := newTestRouter(u.ID)

	rem := seedReminder(t, u.ID, time.Now().AddDate(0, 0, -1), false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/reminders/%d/done", rem.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded reminders.Reminder
	require.NoError(t, database.DB.First(&reloaded, rem.ID).Error)
	require.True(t, reloaded.IsSent)
}
