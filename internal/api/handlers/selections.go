package handlers

import (
	"log"
	"net/http"

	"inflation-lens/internal/api/models"
	"inflation-lens/internal/growth"
	"inflation-lens/internal/model"

	"github.com/gin-gonic/gin"
)

// SelectionHandler lists the selectable assets, indices and ranges
type SelectionHandler struct {
	sim *Simulator
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(sim *Simulator) *SelectionHandler {
	return &SelectionHandler{sim: sim}
}

// ListAssets handles GET /api/v1/assets
func (h *SelectionHandler) ListAssets(c *gin.Context) {
	log.Printf("SelectionHandler: ListAssets called")
	out := make([]models.AssetInfo, 0, len(model.AllAssets))
	for _, a := range model.AllAssets {
		p := h.sim.Table.Asset(a)
		out = append(out, models.AssetInfo{
			ID:          a,
			Name:        a.DisplayName(),
			Description: a.Description(),
			Policy:      growth.For(a).Name,
			AnnualMean:  p.AnnualMean,
			AnnualVol:   p.AnnualVolatility,
		})
	}
	c.JSON(http.StatusOK, gin.H{"assets": out})
}

// ListInflationIndices handles GET /api/v1/inflation-indices
func (h *SelectionHandler) ListInflationIndices(c *gin.Context) {
	out := make([]models.InflationInfo, 0, len(model.AllInflationTypes))
	for _, i := range model.AllInflationTypes {
		p := h.sim.Table.InflationFor(i)
		out = append(out, models.InflationInfo{
			ID:             i,
			Name:           i.DisplayName(),
			Description:    i.Description(),
			AnnualBaseRate: p.AnnualBaseRate,
			AnnualVol:      p.AnnualVolatility,
		})
	}
	c.JSON(http.StatusOK, gin.H{"inflation_indices": out})
}

// ListRanges handles GET /api/v1/ranges
func (h *SelectionHandler) ListRanges(c *gin.Context) {
	out := make([]models.RangeInfo, 0, len(model.AllTimeRanges))
	for _, r := range model.AllTimeRanges {
		out = append(out, models.RangeInfo{
			ID:     r,
			Name:   r.DisplayName(),
			Months: h.sim.Table.MonthsFor(r),
		})
	}
	c.JSON(http.StatusOK, gin.H{"ranges": out})
}
