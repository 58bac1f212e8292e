package payments

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freelanceros/internal/domain/plans"
	"freelanceros/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	testutil.SetupTestDB(t)
	u, proj := seedProject(t, plans.TierProfessional)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", u.ID)
	})
	r.POST("/payments", CreatePayment)
	r.GET("/payments/export", ExportCSV)

	createPayment(t, r, gin.H{"project_id": proj.ID, "title": "Deposit", "amount": 1000, "with_invoice": true})
	createPayment(t, r, gin.H{"project_id": proj.ID, "title": "Final", "amount": 2500})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/export", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, w.Header().Get("Content-Disposition"), "payments.csv")

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "invoice_number", rows[0][0])
	require.Equal(t, "Deposit", rows[1][1])
	require.Equal(t, "1000.00", rows[1][2])
	require.Equal(t, "Final", rows[2][1])
	require.Equal(t, "pending", rows[2][5])
}
