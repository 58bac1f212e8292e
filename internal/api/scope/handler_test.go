package scope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelanceros/database"
	"freelanceros/internal/app/http/middleware"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/plans"
	domainprojects "freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/scope"
	"freelanceros/internal/domain/users"
	"freelanceros/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scope/share/:token", GetSharedVersion)

	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	authed.GET("/projects/:id/scope", ListVersions)
	authed.POST("/projects/:id/scope", CreateVersion)
	authed.GET("/scope/:id", GetVersion)
	return r
}

func seedProject(t *testing.T) (users.User, domainprojects.Project) {
	t.Helper()

	u := users.User{Name: "Owner", Email: "owner@example.com"}
	require.NoError(t, database.DB.Create(&u).Error)

	cl := clients.Client{UserID: u.ID, Name: "Acme", Email: "billing@acme.com"}
	require.NoError(t, database.DB.Create(&cl).Error)

	proj := domainprojects.Project{
		UserID:   u.ID,
		ClientID: cl.ID,
		Name:     "Website redesign",
		Status:   domainprojects.StatusActive,
	}
	require.NoError(t, database.DB.Create(&proj).Error)
	return u, proj
}

func postVersion(t *testing.T, r *gin.Engine, projectID uint, deliverables string) ScopeVersionDTO {
	t.Helper()

	body, _ := json.Marshal(gin.H{"deliverables": deliverables})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%d/scope", projectID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var got ScopeVersionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestCreateVersionNumbersIncrease(t *testing.T) {
	testutil.SetupTestDB(t)
	u, proj := seedProject(t)
	r := newTestRouter(u.ID)

	v1 := postVersion(t, r, proj.ID, "5 pages, contact form")
	require.Equal(t, 1, v1.VersionNumber)
	require.NotEmpty(t, v1.ShareToken)
	require.Contains(t, v1.ShareURL, v1.ShareToken)

	v2 := postVersion(t, r, proj.ID, "5 pages, contact form, blog")
	require.Equal(t, 2, v2.VersionNumber)
	require.NotEqual(t, v1.ShareToken, v2.ShareToken)

	// Each creation leaves a timeline event on the project.
	var events []domainprojects.TimelineEvent
	require.NoError(t, database.DB.
		Where("project_id = ? AND event_type = ?", proj.ID, domainprojects.EventScope).
		Order("id ASC").
		Find(&events).Error)
	require.Len(t, events, 2)
	require.Equal(t, "Scope v1 created", events[0].Description)
	require.Equal(t, "Scope updated from v1 to v2", events[1].Description)
}

func TestListVersionsNewestFirst(t *testing.T) {
	testutil.SetupTestDB(t)
	u, proj := seedProject(t)
	r := newTestRouter(u.ID)

	postVersion(t, r, proj.ID, "first")
	postVersion(t, r, proj.ID, "second")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/projects/%d/scope", proj.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []ScopeVersionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, 2, got[0].VersionNumber)
	require.Equal(t, 1, got[1].VersionNumber)
}

func TestSharedVersionPublicView(t *testing.T) {
	testutil.SetupTestDB(t)
	u, proj := seedProject(t)
	r := newTestRouter(u.ID)

	v := postVersion(t, r, proj.ID, "5 pages, contact form")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/scope/share/"+v.ShareToken, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got SharedScopeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Website redesign", got.ProjectName)
	require.Equal(t, 1, got.VersionNumber)
	require.Equal(t, "5 pages, contact form", got.Deliverables)

	// The public payload never echoes the token back.
	require.NotContains(t, w.Body.String(), v.ShareToken)
}

func TestSharedVersionUnknownToken(t *testing.T) {
	testutil.SetupTestDB(t)
	u, _ := seedProject(t)
	r := newTestRouter(u.ID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/scope/share/not-a-real-token", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOlderShareLinksStayValid(t *testing.T) {
	testutil.SetupTestDB(t)
	u, proj := seedProject(t)
	r := newTestRouter(u.ID)

	v1 := postVersion(t, r, proj.ID, "first")
	postVersion(t, r, proj.ID, "second")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/scope/share/"+v1.ShareToken, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got SharedScopeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 1, got.VersionNumber)
	require.Equal(t, "first", got.Deliverables)
}

func newCapabilityRouter(u users.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", u.ID)
		c.Set("email", u.Email)
	})
	r.POST("/projects/:id/scope", middleware.RequireCapability("scope_sharing"), CreateVersion)
	return r
}

func TestCreateVersionRequiresScopeSharing(t *testing.T) {
	testutil.SetupTestDB(t)

	plan := plans.Plan{Name: "Professional", Price: 29, StripePriceID: "price_pro", Tier: plans.TierProfessional}
	require.NoError(t, database.DB.Create(&plan).Error)

	sub := "sub_pastdue"
	status := "past_due"
	limited := users.User{
		Name:                     "Limited",
		Email:                    "limited@example.com",
		PlanID:                   &plan.ID,
		SubscriptionId:           &sub,
		StripeSubscriptionStatus: &status,
	}
	require.NoError(t, database.DB.Create(&limited).Error)

	cl := clients.Client{UserID: limited.ID, Name: "Acme", Email: "billing@acme.com"}
	require.NoError(t, database.DB.Create(&cl).Error)
	proj := domainprojects.Project{UserID: limited.ID, ClientID: cl.ID, Name: "Site", Status: domainprojects.StatusActive}
	require.NoError(t, database.DB.Create(&proj).Error)

	body, _ := json.Marshal(gin.H{"deliverables": "5 pages"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%d/scope", proj.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newCapabilityRouter(limited).ServeHTTP(w, req)
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	// A trial user may share scope.
	trialEnd := time.Now().AddDate(0, 0, 7)
	trial := users.User{Name: "Trial", Email: "trial@example.com", TrialEndAt: &trialEnd}
	require.NoError(t, database.DB.Create(&trial).Error)
	trialClient := clients.Client{UserID: trial.ID, Name: "Beta", Email: "ap@beta.com"}
	require.NoError(t, database.DB.Create(&trialClient).Error)
	trialProj := domainprojects.Project{UserID: trial.ID, ClientID: trialClient.ID, Name: "Beta site", Status: domainprojects.StatusActive}
	require.NoError(t, database.DB.Create(&trialProj).Error)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%d/scope", trialProj.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newCapabilityRouter(trial).ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGetVersionScopedToOwner(t *testing.T) {
	testutil.SetupTestDB(t)
	u, proj := seedProject(t)
	r := newTestRouter(u.ID)

	v := postVersion(t, r, proj.ID, "first")

	var stored scope.ScopeVersion
	require.NoError(t, database.DB.First(&stored, v.ID).Error)
	require.Equal(t, u.ID, stored.UserID)

	other := users.User{Name: "Other", Email: "other@example.com"}
	require.NoError(t, database.DB.Create(&other).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/scope/%d", v.ID), nil)
	newTestRouter(other.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
