package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pjaos/retirement-finances-sub000/internal/api/models"
	"github.com/pjaos/retirement-finances-sub000/internal/api/store"
	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"go.uber.org/zap"
)

// ProjectionHandler runs scenarios and serves stored results
type ProjectionHandler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler(engine *calculation.CalculationEngine, runs *store.Store, logger *zap.SugaredLogger) *ProjectionHandler {
	return &ProjectionHandler{
		engine: engine,
		parser: config.NewInputParser(),
		store:  runs,
		logger: logger,
	}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	file, err := h.loadConfig(req)
	if err != nil {
		respondProjectionError(c, err)
		return
	}

	if _, err := file.Scenario(req.Scenario); err != nil {
		respondError(c, http.StatusNotFound, "SCENARIO_NOT_FOUND", err.Error())
		return
	}
	in, err := file.ToInputs(req.Scenario)
	if err != nil {
		respondProjectionError(c, err)
		return
	}

	projection, err := h.engine.RunScenario(in)
	if err != nil {
		respondProjectionError(c, err)
		return
	}
	if req.Overlay {
		projection.Reality = calculation.Reality(in.Holdings)
	}

	run := h.store.Save(projection)
	h.logger.Infow("projection stored", "id", run.ID, "scenario", projection.Scenario, "months", projection.Len())
	c.JSON(http.StatusCreated, summarize(run))
}

// GetProjection handles GET /api/v1/projection/:id
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, summarize(run))
}

// GetRows handles GET /api/v1/projection/:id/rows
func (h *ProjectionHandler) GetRows(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	p := run.Projection
	c.JSON(http.StatusOK, models.RowsResponse{
		ID:           run.ID,
		Mode:         p.Mode,
		Rows:         p.Rows,
		ScheduleRows: p.ScheduleRows,
	})
}

// GetChart handles GET /api/v1/projection/:id/charts/:name
func (h *ProjectionHandler) GetChart(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	chart, found := run.Projection.Chart(c.Param("name"))
	if !found {
		respondError(c, http.StatusNotFound, "CHART_NOT_FOUND", "no chart named "+c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, chart)
}

// GetReality handles GET /api/v1/projection/:id/reality
func (h *ProjectionHandler) GetReality(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	if run.Projection.Reality == nil {
		respondError(c, http.StatusNotFound, "NO_REALITY", "projection was run without overlay")
		return
	}
	c.JSON(http.StatusOK, run.Projection.Reality)
}

func (h *ProjectionHandler) loadConfig(req models.ProjectionRequest) (*config.File, error) {
	switch {
	case req.Config != nil && req.ConfigYAML != "":
		return nil, &domain.ValidationError{Field: "config", Message: "set either config or config_yaml, not both"}
	case req.Config != nil:
		if err := h.parser.Prepare(req.Config); err != nil {
			return nil, err
		}
		return req.Config, nil
	case req.ConfigYAML != "":
		file, err := h.parser.LoadFromBytes([]byte(req.ConfigYAML))
		if err != nil {
			return nil, &domain.ValidationError{Field: "config_yaml", Message: err.Error()}
		}
		return file, nil
	default:
		return nil, &domain.ValidationError{Field: "config", Message: "a configuration is required"}
	}
}

func (h *ProjectionHandler) lookup(c *gin.Context) (*store.Run, bool) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "no projection with id "+c.Param("id"))
		return nil, false
	}
	return run, true
}

func summarize(run *store.Run) models.ProjectionSummary {
	p := run.Projection
	total, pension, savings := p.FinalBalances()
	summary := models.ProjectionSummary{
		ID:           run.ID,
		CreatedAt:    run.CreatedAt,
		Scenario:     p.Scenario,
		Mode:         p.Mode,
		Months:       p.Len(),
		FinalTotal:   total,
		FinalPension: pension,
		FinalSavings: savings,
		MoneyRanOut:  p.MoneyRanOut,
		TaxYears:     p.TaxYears,
		Charts:       make([]string, 0, len(p.Charts)),
	}
	if p.MoneyRanOutDate != nil {
		summary.MoneyRanOutDate = domain.FormatDate(*p.MoneyRanOutDate)
	}
	for _, chart := range p.Charts {
		summary.Charts = append(summary.Charts, chart.Name)
	}
	return summary
}
