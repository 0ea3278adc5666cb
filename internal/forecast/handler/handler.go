package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"foresight/internal/forecast/engine"
	"foresight/internal/forecast/models"
	"foresight/internal/forecast/service"
	"foresight/internal/report"
	dErrors "foresight/pkg/domain-errors"
	"foresight/pkg/platform/httputil"
	"foresight/pkg/requestcontext"
)

// Service defines the forecast operations exposed over HTTP.
type Service interface {
	Catalog(ctx context.Context) []*models.Record
	Record(ctx context.Context, name string) (*models.Record, error)
	Progress(ctx context.Context, req service.ProgressRequest) (*service.ProgressResult, error)
	Density(ctx context.Context, span engine.YearRange) (*engine.Density, error)
	Relationships(ctx context.Context) (*service.RelationshipResult, error)
	Graph(ctx context.Context) (*engine.Graph, error)
	Timeline(ctx context.Context) ([]engine.TimelineRow, error)
	Blueprint(ctx context.Context) (*service.BlueprintResult, error)
	ProgressChart(ctx context.Context, req service.ProgressRequest) ([]byte, error)
	Health(ctx context.Context) error
}

// Handler serves the forecast dashboard API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new forecast Handler. A nil logger discards output.
func New(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

// Register registers the forecast routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.HandleCatalog)
		r.Get("/catalog/{name}", h.HandleRecord)
		r.Get("/progress", h.HandleProgress)
		r.Get("/density", h.HandleDensity)
		r.Get("/relationships", h.HandleRelationships)
		r.Get("/relationships/graph", h.HandleGraph)
		r.Get("/timeline", h.HandleTimeline)
		r.Get("/blueprint", h.HandleBlueprint)
		r.Get("/report/comparison", h.HandleComparisonReport)
	})
	r.Get("/charts/progress.png", h.HandleProgressChart)
	r.Get("/healthz", h.HandleHealth)
}

// HandleCatalog lists every forecast record in display order.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	records := h.service.Catalog(r.Context())
	httputil.WriteJSON(w, http.StatusOK, toCatalogResponse(records))
}

// HandleRecord returns a single record addressed by name or label.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	record, err := h.service.Record(ctx, name)
	if err != nil {
		h.fail(ctx, w, "failed to get record", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRecordResponse(record))
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := parseProgressRequest(r)
	if err != nil {
		h.fail(ctx, w, "invalid progress request", err)
		return
	}

	res, err := h.service.Progress(ctx, req)
	if err != nil {
		h.fail(ctx, w, "failed to compute progress", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toProgressResponse(res))
}

func (h *Handler) HandleDensity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	span, err := parseYearRange(r)
	if err != nil {
		h.fail(ctx, w, "invalid density request", err)
		return
	}

	d, err := h.service.Density(ctx, span)
	if err != nil {
		h.fail(ctx, w, "failed to compute milestone density", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDensityResponse(d))
}

func (h *Handler) HandleRelationships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.service.Relationships(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to compute relationships", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RelationshipResponse{Labels: res.Labels, Matrix: res.Matrix})
}

func (h *Handler) HandleGraph(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	g, err := h.service.Graph(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to build relationship graph", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGraphResponse(g))
}

func (h *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rows, err := h.service.Timeline(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to build timeline", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toTimelineResponse(rows))
}

func (h *Handler) HandleBlueprint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bp, err := h.service.Blueprint(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to build blueprint", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBlueprintResponse(bp))
}

// HandleComparisonReport serves the comparison report as a download.
func (h *Handler) HandleComparisonReport(w http.ResponseWriter, _ *http.Request) {
	body := report.Comparison()
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.ComparisonFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) HandleProgressChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := parseProgressRequest(r)
	if err != nil {
		h.fail(ctx, w, "invalid chart request", err)
		return
	}

	img, err := h.service.ProgressChart(ctx, req)
	if err != nil {
		h.fail(ctx, w, "failed to render progress chart", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// HandleHealth reports liveness. A broken cache degrades the response but the
// service keeps answering from the engine.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := HealthResponse{Status: "ok", Cache: "ok"}
	if err := h.service.Health(ctx); err != nil {
		h.logger.WarnContext(ctx, "cache health check failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		resp.Status = "degraded"
		resp.Cache = "unavailable"
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// fail logs err at a level matching its code and writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput, dErrors.CodeNotFound:
		h.logger.WarnContext(ctx, msg, attrs...)
	default:
		h.logger.ErrorContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
