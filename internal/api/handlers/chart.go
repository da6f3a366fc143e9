package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"inflation-lens/internal/api/models"
	"inflation-lens/internal/format"
	"inflation-lens/internal/metrics"
	"inflation-lens/internal/report"
	"inflation-lens/internal/simulate"
	"inflation-lens/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChartHandler handles chart generation and download requests
type ChartHandler struct {
	sim   *Simulator
	store store.Store
}

// NewChartHandler creates a new chart handler
func NewChartHandler(sim *Simulator, st store.Store) *ChartHandler {
	return &ChartHandler{sim: sim, store: st}
}

// Generate handles GET /api/v1/chart
func (h *ChartHandler) Generate(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}

	sel := h.sim.resolve(req.Asset, req.Inflation, req.Range)
	seed := h.sim.seedOrNow(req.Seed)

	data, err := observed{gen: h.sim.generator(seed)}.Generate(sel.Asset, sel.Inflation, sel.Range)
	if err != nil {
		log.Printf("ChartHandler: generate %s/%s/%s failed: %v", sel.Asset, sel.Inflation, sel.Range, err)
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeGenerationError, err.Error()))
		return
	}

	chart := &store.Chart{
		ID:        uuid.NewString(),
		Asset:     sel.Asset,
		Inflation: sel.Inflation,
		Range:     sel.Range,
		Seed:      &seed,
		CreatedAt: h.sim.now().UTC(),
		Data:      *data,
	}
	if err := h.store.Save(c.Request.Context(), chart); err != nil {
		log.Printf("ChartHandler: save %s failed: %v", chart.ID, err)
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeStoreError, err.Error()))
		return
	}
	metrics.StoredCharts.Inc()

	c.JSON(http.StatusOK, h.buildResponse(chart))
}

// Get handles GET /api/v1/chart/:id
func (h *ChartHandler) Get(c *gin.Context) {
	chart, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.buildResponse(chart))
}

// CSV handles GET /api/v1/chart/:id/csv
func (h *ChartHandler) CSV(c *gin.Context) {
	chart, ok := h.load(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := simulate.WriteSeriesCSV(&buf, &chart.Data); err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeReportError, err.Error()))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName(chart, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// PDF handles GET /api/v1/chart/:id/pdf
func (h *ChartHandler) PDF(c *gin.Context) {
	chart, ok := h.load(c)
	if !ok {
		return
	}
	b, err := report.Bytes(report.Input{
		Asset:     chart.Asset,
		Inflation: chart.Inflation,
		Range:     chart.Range,
		Generated: chart.CreatedAt,
		Data:      &chart.Data,
	})
	if err != nil {
		log.Printf("ChartHandler: pdf %s failed: %v", chart.ID, err)
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeReportError, err.Error()))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName(chart, "pdf")))
	c.Data(http.StatusOK, "application/pdf", b)
}

func (h *ChartHandler) load(c *gin.Context) (*store.Chart, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeNotFound, fmt.Sprintf("chart %q not found", id)))
		return nil, false
	}
	chart, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeNotFound, fmt.Sprintf("chart %q not found", id)))
		return nil, false
	}
	if err != nil {
		log.Printf("ChartHandler: load %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeStoreError, err.Error()))
		return nil, false
	}
	return chart, true
}

func (h *ChartHandler) buildResponse(chart *store.Chart) models.ChartResponse {
	lo, hi := format.AxisDomain(chart.Data.Series)
	return models.ChartResponse{
		ID: chart.ID,
		Selection: models.Selection{
			Asset:     chart.Asset,
			Inflation: chart.Inflation,
			Range:     chart.Range,
			Months:    chart.Data.Months(),
		},
		Seed:      chart.Seed,
		CreatedAt: chart.CreatedAt,
		Series:    chart.Data.Series,
		Summary:   chart.Data.Summary,
		Formatted: format.Summary(&chart.Data),
		Axis:      models.AxisInfo{Min: lo, Max: hi},
	}
}

func fileName(chart *store.Chart, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", chart.Asset, chart.Inflation, strings.ToLower(string(chart.Range)), ext)
}
