package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/params"
)

// Version is reported by /healthz.
var Version = "dev"

// Handlers contains the HTTP handlers for the trace API.
type Handlers struct {
	limits config.LimitsConfig
	logger *slog.Logger
}

// NewHandlers creates handlers that enforce limits and log to logger.
func NewHandlers(limits config.LimitsConfig, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{limits: limits, logger: logger}
}

// HandleSort handles GET /api/sort/:algorithm.
func (h *Handlers) HandleSort(c *gin.Context) {
	h.serveTrace(c, "HandleSort", engine.Sorting, c.Param("algorithm"))
}

// HandleTreeTraversal handles GET /api/tree/traversal/:traversal.
func (h *Handlers) HandleTreeTraversal(c *gin.Context) {
	h.serveTrace(c, "HandleTreeTraversal", engine.Tree, c.Param("traversal"))
}

// HandleRecursion handles GET /api/recursion/:algorithm.
func (h *Handlers) HandleRecursion(c *gin.Context) {
	h.serveTrace(c, "HandleRecursion", engine.Recursion, c.Param("algorithm"))
}

// HandleGraph handles GET /api/graph/:algorithm.
func (h *Handlers) HandleGraph(c *gin.Context) {
	h.serveTrace(c, "HandleGraph", engine.Graph, c.Param("algorithm"))
}

// HandleAlgorithms handles GET /api/algorithms.
func (h *Handlers) HandleAlgorithms(c *gin.Context) {
	families := make(map[string][]string, len(engine.Families()))
	for _, f := range engine.Families() {
		families[string(f)] = engine.Variants(f)
	}
	c.JSON(http.StatusOK, AlgorithmsResponse{
		Families: families,
		Generators: GeneratorsInfo{
			Sequences: builder.SequenceNames(),
			Shapes:    builder.ShapeNames(),
			Trees:     params.TreeGenerators(),
		},
	})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: Version})
}

func (h *Handlers) serveTrace(c *gin.Context, handler string, family engine.Family, variant string) {
	logger := requestLogger(c, h.logger, handler)

	res, err := h.trace(family, variant, c.GetQuery)
	if err != nil {
		h.fail(c, logger, family, err)
		return
	}
	logger.Debug("trace generated", "family", family, "variant", variant, "steps", len(res.Steps))
	c.JSON(http.StatusOK, TraceResponse{Steps: res.Steps, Complexity: res.Complexity})
}

// trace builds the request, runs the engine and records metrics.
func (h *Handlers) trace(family engine.Family, variant string, lookup params.Lookup) (engine.Result, error) {
	req, err := params.Build(family, variant, lookup, h.limits)
	if err != nil {
		return engine.Result{}, err
	}
	res, err := engine.Run(req, engine.WithObserver(countStep))
	if err != nil {
		return engine.Result{}, err
	}
	tracesTotal.WithLabelValues(string(family), variant).Inc()
	traceSteps.Observe(float64(len(res.Steps)))
	return res, nil
}

func (h *Handlers) fail(c *gin.Context, logger *slog.Logger, family engine.Family, err error) {
	resp := errorFor(family, err)
	requestErrors.WithLabelValues(resp.Code).Inc()
	logger.Warn("request rejected", "code", resp.Code, "error", err)
	c.JSON(http.StatusBadRequest, resp)
}

// errorFor maps an engine or params failure to its response body. The
// unknown-algorithm messages are fixed strings clients match on.
func errorFor(family engine.Family, err error) ErrorResponse {
	switch {
	case errors.Is(err, engine.ErrUnknownAlgorithm):
		msg := "Unknown algorithm"
		if family == engine.Tree {
			msg = "Unknown traversal type"
		}
		return ErrorResponse{Error: msg, Code: CodeUnknownAlgorithm}
	case errors.Is(err, params.ErrLimitExceeded):
		return ErrorResponse{Error: err.Error(), Code: CodeLimitExceeded}
	default:
		return ErrorResponse{Error: err.Error(), Code: CodeInvalidInput}
	}
}
