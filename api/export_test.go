package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fintrack/service"
	"fintrack/store"
)

func newExportTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewMemory()
	seedTestCategories(t, st)

	incomes := service.NewIncomeService(st, st)
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	d2 := time.Date(2024, 8, 1, 0, 0, 0, 0, time.Local)
	_, err := incomes.Create(1, service.CreateIncomeInput{Amount: 1000, Date: &d1, Source: "Employer"})
	require.NoError(t, err)
	_, err = incomes.Create(1, service.CreateIncomeInput{Amount: 250.5, Date: &d2, Source: "Side gig"})
	require.NoError(t, err)

	h := NewExportHandler(incomes)
	r := gin.New()
	r.Use(setUserIDMiddleware(1))
	r.GET("/export/csv", h.CSV)
	r.GET("/export/json", h.JSON)
	r.GET("/export/xlsx", h.XLSX)
	return r
}

func TestExportHandler_CSV(t *testing.T) {
	r := newExportTestRouter(t)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.String()
	// UTF-8 BOM prefix
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "ID,Amount,Date,Source,Description,Category")
	assert.Contains(t, body, "Employer")
	assert.Contains(t, body, "1000.00")
	assert.Contains(t, body, "250.50")
	// newest date first
	assert.Less(t, strings.Index(body, "Side gig"), strings.Index(body, "Employer"))
}

func TestExportHandler_CSVRange(t *testing.T) {
	r := newExportTestRouter(t)

	req := httptest.NewRequest("GET", "/export/csv?start=2024-01-01&end=2024-03-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Employer")
	assert.NotContains(t, w.Body.String(), "Side gig")

	// invalid range
	req2 := httptest.NewRequest("GET", "/export/csv?start=2024-12-01&end=2024-01-01", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	assert.Equal(t, 400, w2.Code)
}

func TestExportHandler_JSON(t *testing.T) {
	r := newExportTestRouter(t)

	req := httptest.NewRequest("GET", "/export/json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["total_count"])
	assert.InDelta(t, 1250.5, resp["total_amount"], 0.001)
	assert.Len(t, resp["incomes"], 2)
}

func TestExportHandler_XLSX(t *testing.T) {
	r := newExportTestRouter(t)

	req := httptest.NewRequest("GET", "/export/xlsx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Incomes")
	require.NoError(t, err)
	// header + 2 incomes + total row
	require.Len(t, rows, 4)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Side gig", rows[1][3])
	assert.Equal(t, "Employer", rows[2][3])
	assert.Equal(t, "Total", rows[3][0])
}
