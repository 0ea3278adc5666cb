package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"foresight/internal/forecast/blueprint"
	"foresight/internal/forecast/catalog"
	"foresight/internal/forecast/chart"
	"foresight/internal/forecast/engine"
	"foresight/internal/forecast/metrics"
	"foresight/internal/forecast/models"
	dErrors "foresight/pkg/domain-errors"
	"foresight/pkg/platform/sentinel"
	"foresight/pkg/requestcontext"
)

// Operation names used for metrics, spans and cache keys.
const (
	OpCatalog       = "catalog"
	OpRecord        = "record"
	OpProgress      = "progress"
	OpDensity       = "density"
	OpRelationships = "relationships"
	OpGraph         = "graph"
	OpTimeline      = "timeline"
	OpBlueprint     = "blueprint"
	OpProgressChart = "progress_chart"
)

const tracerName = "foresight/internal/forecast/service"

// Cache memoizes serialized results. Get returns sentinel.ErrNotFound on a
// miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Health(ctx context.Context) error
}

// Service answers dashboard queries from the static catalog. Engine results
// are authoritative; the cache only saves recomputation and its failures are
// logged, never surfaced.
type Service struct {
	records  func() []*models.Record
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(s *Service)

// WithCache memoizes derived metrics in c for ttl.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithCatalog swaps the record source, mainly for tests.
func WithCatalog(records func() []*models.Record) Option {
	return func(s *Service) {
		s.records = records
	}
}

// New constructs a Service over catalog.All.
func New(opts ...Option) *Service {
	s := &Service{
		records: catalog.All,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns a fresh copy of every record in display order.
func (s *Service) Catalog(ctx context.Context) []*models.Record {
	_, finish := s.begin(ctx, OpCatalog)
	defer finish(nil)
	return s.records()
}

// Record looks a record up by name or label.
func (s *Service) Record(ctx context.Context, name string) (*models.Record, error) {
	ctx, finish := s.begin(ctx, OpRecord, attribute.String("record.name", name))
	r, err := catalog.Find(s.records(), name)
	if errors.Is(err, sentinel.ErrNotFound) {
		err = dErrors.Newf(dErrors.CodeNotFound, "no forecast named %q", name)
	}
	finish(err)
	return r, err
}

// Progress evaluates progress curves for every record.
func (s *Service) Progress(ctx context.Context, req ProgressRequest) (*ProgressResult, error) {
	ctx, finish := s.begin(ctx, OpProgress,
		attribute.String("progress.mode", string(req.Mode)),
		attribute.Float64("progress.from", req.From),
		attribute.Float64("progress.to", req.To),
		attribute.Float64("progress.step", req.Step),
	)
	res, err := memoize(ctx, s, OpProgress, req.cacheKey(), func() (*ProgressResult, error) {
		return s.computeProgress(req)
	})
	finish(err)
	return res, err
}

func (s *Service) computeProgress(req ProgressRequest) (*ProgressResult, error) {
	years, err := engine.SampleYears(req.From, req.To, req.Step)
	if err != nil {
		return nil, err
	}
	records := s.records()
	curves, err := engine.ComputeProgress(records, years, req.Mode)
	if err != nil {
		return nil, err
	}
	res := &ProgressResult{Mode: req.Mode, Years: years, Series: make([]ProgressSeries, 0, len(records))}
	for _, r := range records {
		res.Series = append(res.Series, ProgressSeries{Name: r.Name, Label: r.Label(), Values: curves[r.Name]})
	}
	return res, nil
}

// Density counts milestones per record and year.
func (s *Service) Density(ctx context.Context, span engine.YearRange) (*engine.Density, error) {
	ctx, finish := s.begin(ctx, OpDensity,
		attribute.Int("density.from", span.From),
		attribute.Int("density.to", span.To),
	)
	key := fmt.Sprintf("%s:%d:%d", OpDensity, span.From, span.To)
	res, err := memoize(ctx, s, OpDensity, key, func() (*engine.Density, error) {
		return engine.ComputeMilestoneDensity(s.records(), span)
	})
	finish(err)
	return res, err
}

// Relationships returns the pairwise relationship matrix with row labels.
func (s *Service) Relationships(ctx context.Context) (*RelationshipResult, error) {
	ctx, finish := s.begin(ctx, OpRelationships)
	res, err := memoize(ctx, s, OpRelationships, OpRelationships, func() (*RelationshipResult, error) {
		records := s.records()
		labels := make([]string, len(records))
		for i, r := range records {
			labels[i] = r.Label()
		}
		return &RelationshipResult{Labels: labels, Matrix: engine.ComputeRelationshipMatrix(records)}, nil
	})
	finish(err)
	return res, err
}

// Graph lays the relationship matrix out on a circle.
func (s *Service) Graph(ctx context.Context) (*engine.Graph, error) {
	ctx, finish := s.begin(ctx, OpGraph)
	res, err := memoize(ctx, s, OpGraph, OpGraph, func() (*engine.Graph, error) {
		records := s.records()
		g := engine.BuildRelationshipGraph(records, engine.ComputeRelationshipMatrix(records))
		return &g, nil
	})
	finish(err)
	return res, err
}

// Timeline returns Gantt rows ordered by integration year.
func (s *Service) Timeline(ctx context.Context) ([]engine.TimelineRow, error) {
	_, finish := s.begin(ctx, OpTimeline)
	rows, err := engine.BuildTimeline(s.records())
	finish(err)
	return rows, err
}

// Blueprint returns the policy roadmap and its plot points.
func (s *Service) Blueprint(ctx context.Context) (*BlueprintResult, error) {
	_, finish := s.begin(ctx, OpBlueprint)
	phases := blueprint.Phases()
	points, err := blueprint.Points(phases)
	finish(err)
	if err != nil {
		return nil, err
	}
	return &BlueprintResult{Phases: phases, Points: points}, nil
}

// ProgressChart renders the progress curves for req as a PNG.
func (s *Service) ProgressChart(ctx context.Context, req ProgressRequest) ([]byte, error) {
	res, err := s.Progress(ctx, req)
	if err != nil {
		return nil, err
	}

	_, finish := s.begin(ctx, OpProgressChart)
	series := make([]chart.Series, len(res.Series))
	for i, ps := range res.Series {
		series[i] = chart.Series{Name: ps.Label, Values: ps.Values}
	}
	var buf bytes.Buffer
	err = chart.RenderProgress(&buf, chart.Title(res.Mode), res.Years, series)
	if err != nil && !dErrors.HasCode(err, dErrors.CodeInvalidInput) {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to render progress chart")
	}
	finish(err)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Health reports whether the memoization cache is reachable. A service
// without a cache is always healthy.
func (s *Service) Health(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Health(ctx)
}

// begin starts a span and returns a finisher that records latency, error
// metrics and span status.
func (s *Service) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "forecast."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		s.metrics.ObserveOperation(op, time.Since(start))
		if err != nil {
			code := dErrors.CodeOf(err)
			s.metrics.IncrementError(op, string(code))
			span.RecordError(err)
			span.SetStatus(codes.Error, string(code))
			s.logger.WarnContext(ctx, "forecast operation failed",
				"request_id", requestcontext.RequestID(ctx),
				"operation", op,
				"code", code,
				"error", err,
			)
		}
		span.End()
	}
}

// memoize serves op from the cache when possible and stores fresh results.
// Only successful results are cached.
func memoize[T any](ctx context.Context, s *Service, op, key string, compute func() (T, error)) (T, error) {
	if s.cache == nil {
		return compute()
	}

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		jerr := json.Unmarshal(raw, &cached)
		if jerr != nil {
			s.metrics.IncrementCacheLookup(op, metrics.CacheError)
			s.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", jerr)
			break
		}
		s.metrics.IncrementCacheLookup(op, metrics.CacheHit)
		return cached, nil
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementCacheLookup(op, metrics.CacheMiss)
	default:
		s.metrics.IncrementCacheLookup(op, metrics.CacheError)
		s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	res, err := compute()
	if err != nil {
		return res, err
	}

	if encoded, jerr := json.Marshal(res); jerr != nil {
		s.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", jerr)
	} else if serr := s.cache.Set(ctx, key, encoded, s.cacheTTL); serr != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", serr)
	}
	return res, nil
}
