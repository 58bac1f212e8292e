package dashboard

import (
	"testing"
	"time"

	"freelanceros/database"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/users"
	"freelanceros/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedWorld(t *testing.T) (users.User, clients.Client, projects.Project) {
	t.Helper()

	u := users.User{Name: "Owner", Email: "owner@example.com"}
	require.NoError(t, database.DB.Create(&u).Error)

	cl := clients.Client{UserID: u.ID, Name: "Acme", Email: "billing@acme.com"}
	require.NoError(t, database.DB.Create(&cl).Error)

	proj := projects.Project{
		UserID:   u.ID,
		ClientID: cl.ID,
		Name:     "Website redesign",
		Status:   projects.StatusActive,
	}
	require.NoError(t, database.DB.Create(&proj).Error)
	return u, cl, proj
}

func seedPayment(t *testing.T, u users.User, cl clients.Client, proj projects.Project, amount, paid float64, status string, due *time.Time) payments.Payment {
	t.Helper()

	p := payments.Payment{
		PublicID:   uuid.NewString(),
		UserID:     u.ID,
		ClientID:   cl.ID,
		ProjectID:  proj.ID,
		Title:      "Milestone",
		Amount:     amount,
		AmountPaid: paid,
		Status:     status,
		DueDate:    due,
	}
	require.NoError(t, database.DB.Create(&p).Error)
	return p
}

func TestPaymentRisks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, cl, proj := seedWorld(t)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)
	tomorrow := now.AddDate(0, 0, 1)

	seedPayment(t, u, cl, proj, 1000, 0, payments.StatusOverdue, &yesterday)
	seedPayment(t, u, cl, proj, 500, 0, payments.StatusOverdue, &lastWeek)
	// Not risks: paid, cancelled, not yet due.
	seedPayment(t, u, cl, proj, 700, 700, payments.StatusPaid, &lastWeek)
	seedPayment(t, u, cl, proj, 300, 0, payments.StatusCancelled, &lastWeek)
	seedPayment(t, u, cl, proj, 900, 0, payments.StatusPending, &tomorrow)

	risks, err := PaymentRisks(db, u.ID, now)
	require.NoError(t, err)
	require.Len(t, risks, 2)

	// Most overdue first.
	require.Equal(t, "7 days overdue • $500", risks[0].Metadata)
	require.Equal(t, "1 days overdue • $1000", risks[1].Metadata)
	for _, r := range risks {
		require.Equal(t, "payment", r.RiskType)
		require.Equal(t, "Website redesign", r.ProjectName)
		require.Equal(t, "Acme", r.ClientName)
	}
}

func TestPaymentRisksPartialStillFlagged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, cl, proj := seedWorld(t)

	now := time.Now()
	lastWeek := now.AddDate(0, 0, -7)
	seedPayment(t, u, cl, proj, 1000, 400, payments.StatusPartial, &lastWeek)

	risks, err := PaymentRisks(db, u.ID, now)
	require.NoError(t, err)
	require.Len(t, risks, 1)
	require.Equal(t, "7 days overdue • $1000", risks[0].Metadata)
}

func TestGhostingRisks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, cl, proj := seedWorld(t)

	now := time.Now()

	// Fresh contact: no risk yet.
	recent := now.AddDate(0, 0, -3)
	require.NoError(t, db.Model(&cl).Update("last_contact_date", recent).Error)
	risks, err := GhostingRisks(db, u.ID, now)
	require.NoError(t, err)
	require.Empty(t, risks)

	// Past the threshold.
	stale := now.AddDate(0, 0, -20)
	require.NoError(t, db.Model(&cl).Update("last_contact_date", stale).Error)
	risks, err = GhostingRisks(db, u.ID, now)
	require.NoError(t, err)
	require.Len(t, risks, 1)
	require.Equal(t, "ghosting", risks[0].RiskType)
	require.Equal(t, proj.ID, risks[0].ProjectID)
	require.Equal(t, "Last contact 20 days ago", risks[0].Metadata)
}

func TestGhostingSkipsCompletedAndUnknownContact(t *testing.T) {
	db := testutil.SetupTestDB(t)
	u, cl, proj := seedWorld(t)

	now := time.Now()

	// Never contacted: skipped entirely.
	risks, err := GhostingRisks(db, u.ID, now)
	require.NoError(t, err)
	require.Empty(t, risks)

	// Stale contact but project no longer in flight.
	stale := now.AddDate(0, 0, -30)
	require.NoError(t, db.Model(&cl).Update("last_contact_date", stale).Error)
	require.NoError(t, db.Model(&proj).Update("status", projects.StatusCompleted).Error)

	risks, err = GhostingRisks(db, u.ID, now)
	require.NoError(t, err)
	require.Empty(t, risks)
}
