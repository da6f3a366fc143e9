package handlers

import (
	"fmt"
	"log"
	"net/http"

	"inflation-lens/internal/analysis"
	"inflation-lens/internal/api/models"
	"inflation-lens/internal/metrics"
	"inflation-lens/internal/model"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles cross-asset and Monte-Carlo requests
type AnalysisHandler struct {
	sim *Simulator
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(sim *Simulator) *AnalysisHandler {
	return &AnalysisHandler{sim: sim}
}

// Compare handles GET /api/v1/compare
func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}

	sel := h.sim.resolve("", req.Inflation, req.Range)
	seed := h.sim.seedOrNow(req.Seed)

	outcomes, err := analysis.Compare(observed{gen: h.sim.generator(seed)}, model.AllAssets, sel.Inflation, sel.Range)
	if err != nil {
		log.Printf("AnalysisHandler: compare failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeGenerationError, err.Error()))
		return
	}

	rankings := make([]models.Ranking, len(outcomes))
	for i, o := range outcomes {
		rankings[i] = models.Ranking{Rank: i + 1, Outcome: o}
	}
	c.JSON(http.StatusOK, models.CompareResponse{
		Inflation: sel.Inflation,
		Range:     sel.Range,
		Seed:      &seed,
		Rankings:  rankings,
	})
}

// Distribution handles GET /api/v1/distribution
func (h *AnalysisHandler) Distribution(c *gin.Context) {
	var req models.DistributionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}

	trials := req.Trials
	if trials == 0 {
		trials = h.sim.DefaultTrials
	}
	if h.sim.MaxTrials > 0 && trials > h.sim.MaxTrials {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidRequest,
				Message: fmt.Sprintf("trials must be <= %d", h.sim.MaxTrials),
				Details: map[string]interface{}{
					"trials":     trials,
					"max_trials": h.sim.MaxTrials,
				},
			},
		})
		return
	}

	sel := h.sim.resolve(req.Asset, req.Inflation, req.Range)
	seed := h.sim.seedOrNow(req.Seed)

	dist, err := analysis.ComputeDistribution(h.sim.generator(seed), sel.Asset, sel.Inflation, sel.Range, trials)
	if err != nil {
		log.Printf("AnalysisHandler: distribution failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeGenerationError, err.Error()))
		return
	}
	metrics.DistributionTrials.Add(float64(trials))

	c.JSON(http.StatusOK, gin.H{
		"seed":         seed,
		"distribution": dist,
	})
}
