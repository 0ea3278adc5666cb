// Package forecast exposes the forecast catalog and its derived metrics.
package forecast

import (
	"log/slog"

	"foresight/internal/forecast/handler"
	"foresight/internal/forecast/service"
)

// Service answers catalog and derived-metric queries.
type Service = service.Service

// Handler wires HTTP endpoints to the forecast service.
type Handler = handler.Handler

// NewService constructs the forecast service over the built-in catalog.
func NewService(opts ...service.Option) *Service {
	return service.New(opts...)
}

// NewHandler constructs the dashboard API handler.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
