package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/reminders"
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
	r.GET("/dashboard/summary", GetSummary)
	r.GET("/dashboard/risks", GetRisks)
	return r
}

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, cl, proj := seedWorld(t)

	now := time.Now()
	lastWeek := now.AddDate(0, 0, -7)

	// 1000 open, 400 of a 1200 invoice received this month, one fully paid.
	seedPayment(t, u, cl, proj, 1000, 0, payments.StatusOverdue, &lastWeek)
	partial := seedPayment(t, u, cl, proj, 1200, 400, payments.StatusPartial, nil)
	_ = partial
	paid := seedPayment(t, u, cl, proj, 500, 500, payments.StatusPaid, nil)
	require.NoError(t, db.Model(&paid).Update("paid_date", now).Error)
	cancelled := seedPayment(t, u, cl, proj, 900, 0, payments.StatusCancelled, &lastWeek)
	_ = cancelled

	require.NoError(t, db.Create(&reminders.Reminder{
		UserID:       u.ID,
		Title:        "Chase",
		ReminderDate: now.AddDate(0, 0, -1),
		ReminderType: reminders.TypePayment,
	}).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	newTestRouter(u.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, int64(1), got.TotalClients)
	require.Equal(t, int64(1), got.ActiveProjects)
	// (1000-0) + (1200-400); paid and cancelled rows do not count
	require.InDelta(t, 1800.0, got.Outstanding, 0.001)
	require.InDelta(t, 500.0, got.CollectedMonth, 0.001)
	require.Equal(t, int64(1), got.OverduePayments)
	require.Equal(t, int64(1), got.DueReminders)
	require.Equal(t, int64(1), got.ProjectsPerState[projects.StatusActive])
	require.Equal(t, int64(0), got.ProjectsPerState[projects.StatusLead])
}

func TestGetSummaryReportsQueryFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, _, _ := seedWorld(t)

	require.NoError(t, db.Migrator().DropTable(&payments.Payment{}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	newTestRouter(u.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to load summary")
}

func TestGetRisksCombinesKinds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, cl, proj := seedWorld(t)

	now := time.Now()
	lastWeek := now.AddDate(0, 0, -7)
	seedPayment(t, u, cl, proj, 1000, 0, payments.StatusOverdue, &lastWeek)

	stale := now.AddDate(0, 0, -20)
	require.NoError(t, db.Model(&cl).Update("last_contact_date", stale).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/risks", nil)
	newTestRouter(u.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []RiskItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "payment", got[0].RiskType)
	require.Equal(t, "ghosting", got[1].RiskType)
}
