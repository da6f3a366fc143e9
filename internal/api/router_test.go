package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inflation-lens/internal/analysis"
	"inflation-lens/internal/api/handlers"
	"inflation-lens/internal/api/models"
	"inflation-lens/internal/model"
	"inflation-lens/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fixedNow() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) }

func newTestRouter(t *testing.T, st store.Store) *gin.Engine {
	t.Helper()
	if st == nil {
		mem := store.NewMemoryStore(time.Hour, 0)
		t.Cleanup(func() { mem.Close() })
		st = mem
	}
	sim := handlers.NewSimulator()
	sim.Now = fixedNow
	sim.DefaultTrials = 20
	sim.MaxTrials = 200
	return NewRouter(Deps{Simulator: sim, Store: st})
}

func do(t *testing.T, r http.Handler, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t, nil), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestChart_GenerateAndDownload(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/v1/chart?asset=fd&inflation=cpi-combined&range=5Y&seed=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ChartResponse](t, w)

	_, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Selection{
		Asset: model.AssetFD, Inflation: model.InflationCPICombined, Range: model.Range5Y, Months: 60,
	}, resp.Selection)
	require.NotNil(t, resp.Seed)
	assert.Equal(t, int64(1), *resp.Seed)
	require.Len(t, resp.Series, 61)
	assert.Equal(t, 100000.0, resp.Series[0].NominalValue)
	assert.Equal(t, 137009.0, resp.Series[60].NominalValue)
	assert.Equal(t, "Oct 21", resp.Series[0].DateLabel)
	assert.Equal(t, "+37.0%", resp.Formatted.NominalReturn)
	assert.Equal(t, "₹1,37,009", resp.Formatted.FinalNominal)
	assert.Less(t, resp.Axis.Min, resp.Axis.Max)

	// Stored copy matches.
	w = do(t, r, http.MethodGet, "/api/v1/chart/"+resp.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	again := decode[models.ChartResponse](t, w)
	assert.Equal(t, resp.Series, again.Series)
	assert.Equal(t, resp.Summary, again.Summary)

	w = do(t, r, http.MethodGet, "/api/v1/chart/"+resp.ID+"/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fd_cpi-combined_5y.csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 62)
	assert.Equal(t, "index,date,nominal_value,real_value,inflation_index,asset_growth_pct,real_growth_pct", lines[0])

	w = do(t, r, http.MethodGet, "/api/v1/chart/"+resp.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestChart_DefaultsAndFallbacks(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/v1/chart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ChartResponse](t, w)
	assert.Equal(t, model.AssetNifty50, resp.Selection.Asset)
	assert.Equal(t, model.InflationCPICombined, resp.Selection.Inflation)
	assert.Equal(t, model.Range5Y, resp.Selection.Range)
	assert.NotNil(t, resp.Seed)

	w = do(t, r, http.MethodGet, "/api/v1/chart?asset=bitcoin&inflation=rent&range=7Y&seed=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[models.ChartResponse](t, w)
	assert.Equal(t, model.AssetFD, resp.Selection.Asset)
	assert.Equal(t, model.InflationCPICombined, resp.Selection.Inflation)
	assert.Equal(t, model.Range5Y, resp.Selection.Range)
	assert.Len(t, resp.Series, 61)

	// Display names and case variants resolve too.
	w = do(t, r, http.MethodGet, "/api/v1/chart?asset=Gold&inflation=WPI&range=max&seed=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[models.ChartResponse](t, w)
	assert.Equal(t, model.AssetGold, resp.Selection.Asset)
	assert.Equal(t, model.InflationWPI, resp.Selection.Inflation)
	assert.Equal(t, model.RangeMax, resp.Selection.Range)
	assert.Len(t, resp.Series, 241)
}

func TestChart_SeedIsReproducible(t *testing.T) {
	r := newTestRouter(t, nil)

	a := decode[models.ChartResponse](t, do(t, r, http.MethodGet, "/api/v1/chart?asset=nifty50&seed=42", nil))
	b := decode[models.ChartResponse](t, do(t, r, http.MethodGet, "/api/v1/chart?asset=nifty50&seed=42", nil))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Series, b.Series)

	c := decode[models.ChartResponse](t, do(t, r, http.MethodGet, "/api/v1/chart?asset=nifty50&seed=43", nil))
	assert.NotEqual(t, a.Series, c.Series)
}

func TestChart_Errors(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/v1/chart?seed=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidRequest, decode[models.ErrorResponse](t, w).Error.Code)

	for _, path := range []string{
		"/api/v1/chart/not-a-uuid",
		"/api/v1/chart/" + uuid.NewString(),
		"/api/v1/chart/" + uuid.NewString() + "/csv",
		"/api/v1/chart/" + uuid.NewString() + "/pdf",
	} {
		w = do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, models.CodeNotFound, decode[models.ErrorResponse](t, w).Error.Code, path)
	}

	w = do(t, r, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.CodeNotFound, decode[models.ErrorResponse](t, w).Error.Code)
}

type brokenStore struct{}

func (brokenStore) Save(context.Context, *store.Chart) error { return errors.New("disk full") }
func (brokenStore) Get(context.Context, string) (*store.Chart, error) {
	return nil, errors.New("connection refused")
}
func (brokenStore) Close() error { return nil }

func TestChart_StoreFailure(t *testing.T) {
	r := newTestRouter(t, brokenStore{})

	w := do(t, r, http.MethodGet, "/api/v1/chart?seed=1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, models.CodeStoreError, decode[models.ErrorResponse](t, w).Error.Code)

	w = do(t, r, http.MethodGet, "/api/v1/chart/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, models.CodeStoreError, decode[models.ErrorResponse](t, w).Error.Code)
}

func TestCompare(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/v1/compare?inflation=cpi-food&range=10Y&seed=5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.CompareResponse](t, w)

	assert.Equal(t, model.InflationCPIFood, resp.Inflation)
	assert.Equal(t, model.Range10Y, resp.Range)
	require.Len(t, resp.Rankings, len(model.AllAssets))
	for i, rk := range resp.Rankings {
		assert.Equal(t, i+1, rk.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, resp.Rankings[i-1].Summary.CAGRRealPct, rk.Summary.CAGRRealPct)
		}
	}
}

func TestDistribution(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/api/v1/distribution?asset=gold&range=3Y&trials=50&seed=9", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[struct {
		Seed         int64                 `json:"seed"`
		Distribution analysis.Distribution `json:"distribution"`
	}](t, w)
	assert.Equal(t, int64(9), resp.Seed)
	assert.Equal(t, 50, resp.Distribution.Trials)
	assert.Equal(t, model.AssetGold, resp.Distribution.Asset)
	assert.LessOrEqual(t, resp.Distribution.CAGRReal.P05, resp.Distribution.CAGRReal.P95)

	w = do(t, r, http.MethodGet, "/api/v1/distribution?seed=9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trials":20`)

	w = do(t, r, http.MethodGet, "/api/v1/distribution?trials=201", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeInvalidRequest, decode[models.ErrorResponse](t, w).Error.Code)

	w = do(t, r, http.MethodGet, "/api/v1/distribution?trials=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelections(t *testing.T) {
	r := newTestRouter(t, nil)

	assets := decode[struct {
		Assets []models.AssetInfo `json:"assets"`
	}](t, do(t, r, http.MethodGet, "/api/v1/assets", nil))
	require.Len(t, assets.Assets, len(model.AllAssets))
	assert.Equal(t, model.AssetNifty50, assets.Assets[0].ID)
	assert.Equal(t, "market-gbm", assets.Assets[0].Policy)
	assert.Equal(t, 0.12, assets.Assets[0].AnnualMean)

	indices := decode[struct {
		Indices []models.InflationInfo `json:"inflation_indices"`
	}](t, do(t, r, http.MethodGet, "/api/v1/inflation-indices", nil))
	assert.Len(t, indices.Indices, len(model.AllInflationTypes))

	ranges := decode[struct {
		Ranges []models.RangeInfo `json:"ranges"`
	}](t, do(t, r, http.MethodGet, "/api/v1/ranges", nil))
	require.Len(t, ranges.Ranges, 5)
	assert.Equal(t, 240, ranges.Ranges[4].Months)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodOptions, "/api/v1/chart", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, r, http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:5173"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, nil)
	do(t, r, http.MethodGet, "/api/v1/chart?seed=1", nil)

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "inflens_generations_total")
	assert.Contains(t, w.Body.String(), "inflens_http_requests_total")
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))

	sim := handlers.NewSimulator()
	st := store.NewMemoryStore(time.Hour, 0)
	t.Cleanup(func() { st.Close() })
	r := NewRouter(Deps{Simulator: sim, Store: st, StaticDir: dir})

	w := do(t, r, http.MethodGet, "/some/client/route", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	w = do(t, r, http.MethodGet, "/api/v1/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
