package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/pjaos/retirement-finances-sub000/internal/api/models"
	"github.com/pjaos/retirement-finances-sub000/internal/api/store"
	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const householdYAML = `
household:
  primary: { name: Alex, birth_date: 01-01-1960, max_age: 70 }
accounts:
  - name: Saver
    history: [ { date: 01-01-2024, value: 50000 } ]
pensions:
  - name: SIPP
    history: [ { date: 01-01-2024, value: 150000 } ]
state_pensions:
  - name: Alex
    start_date: 01-01-2027
    history: [ { date: 01-01-2024, value: 12000 } ]
scenarios:
  - name: Budget
    report_start: 01-01-2024
    monthly_budget: 2000
  - name: Schedule
    mode: schedule
    report_start: 01-01-2024
    pension_withdrawals: [ { date: 01-02-2024, amount: 1000, taxable: true, repeat: monthly, occurrences: 24 } ]
    savings_withdrawals: [ { date: 01-02-2024, amount: 500, repeat: monthly, occurrences: 24 } ]
    other_income_schedule: [ { date: 01-06-2024, amount: 100 } ]
`

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	return NewRouter(calculation.NewCalculationEngine(), store.New(10), zap.NewNop().Sugar())
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestTaxEndpoint(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/v1/tax", map[string]interface{}{"gross": "3750", "period": "monthly"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result struct {
		Tax string `json:"tax"`
		NI  string `json:"ni"`
		Net string `json:"net"`
	}
	decode(t, w, &result)
	assert.Equal(t, "540.5", result.Tax)
	assert.Equal(t, "216.2", result.NI)
	assert.Equal(t, "2993.3", result.Net)

	w = do(t, r, http.MethodPost, "/api/v1/tax", map[string]interface{}{"gross": 1000, "period": "hourly"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp models.ErrorResponse
	decode(t, w, &errResp)
	assert.Equal(t, "INVALID_PERIOD", errResp.Error.Code)

	w = do(t, r, http.MethodPost, "/api/v1/tax", map[string]interface{}{"period": "weekly"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectionLifecycle(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/v1/projection", models.ProjectionRequest{ConfigYAML: householdYAML, Overlay: true})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var summary models.ProjectionSummary
	decode(t, w, &summary)
	assert.Equal(t, "Budget", summary.Scenario)
	assert.Equal(t, "budget", string(summary.Mode))
	assert.Greater(t, summary.Months, 0)
	assert.Contains(t, summary.Charts, "balances")

	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID+"/rows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows models.RowsResponse
	decode(t, w, &rows)
	assert.Len(t, rows.Rows, summary.Months)
	assert.Empty(t, rows.ScheduleRows)

	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID+"/charts/balances", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID+"/charts/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID+"/reality", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/projection/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleProjection(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/v1/projection", models.ProjectionRequest{ConfigYAML: householdYAML, Scenario: "Schedule"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var summary models.ProjectionSummary
	decode(t, w, &summary)
	assert.Equal(t, "schedule", string(summary.Mode))
	assert.NotEmpty(t, summary.TaxYears)

	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID+"/charts/"+url.PathEscape("income sources"), nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/projection/"+summary.ID+"/reality", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectionErrors(t *testing.T) {
	r := newTestRouter()
	tests := []struct {
		name   string
		req    models.ProjectionRequest
		status int
		code   string
	}{
		{"no config", models.ProjectionRequest{}, http.StatusBadRequest, "INVALID_CONFIG"},
		{"bad yaml", models.ProjectionRequest{ConfigYAML: "household: ["}, http.StatusBadRequest, "INVALID_CONFIG"},
		{"unknown scenario", models.ProjectionRequest{ConfigYAML: householdYAML, Scenario: "Nope"}, http.StatusNotFound, "SCENARIO_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/projection", tt.req)
			assert.Equal(t, tt.status, w.Code)
			var errResp models.ErrorResponse
			decode(t, w, &errResp)
			assert.Equal(t, tt.code, errResp.Error.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tax", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPort(t *testing.T) {
	t.Setenv("RETFIN_API_PORT", "")
	assert.Equal(t, DefaultPort, Port())
	t.Setenv("RETFIN_API_PORT", "9090")
	assert.Equal(t, "9090", Port())
}
