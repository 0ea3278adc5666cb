package handler

import (
	"net/http"

	"foresight/internal/forecast/engine"
	"foresight/internal/forecast/service"
	dErrors "foresight/pkg/domain-errors"
	"foresight/pkg/platform/httputil"
)

// Default density span when the query leaves it open.
const (
	defaultDensityFrom = 2025
	defaultDensityTo   = 2035
)

func parseProgressRequest(r *http.Request) (service.ProgressRequest, error) {
	req := service.DefaultProgressRequest()

	mode, ok := engine.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		return req, dErrors.Newf(dErrors.CodeBadRequest, "mode must be %q or %q", engine.ModeLogistic, engine.ModeLinear)
	}
	req.Mode = mode

	var err error
	if req.From, err = httputil.QueryFloat(r, "from", req.From); err != nil {
		return req, err
	}
	if req.To, err = httputil.QueryFloat(r, "to", req.To); err != nil {
		return req, err
	}
	if req.Step, err = httputil.QueryFloat(r, "step", req.Step); err != nil {
		return req, err
	}
	return req, nil
}

func parseYearRange(r *http.Request) (engine.YearRange, error) {
	from, err := httputil.QueryInt(r, "from", defaultDensityFrom)
	if err != nil {
		return engine.YearRange{}, err
	}
	to, err := httputil.QueryInt(r, "to", defaultDensityTo)
	if err != nil {
		return engine.YearRange{}, err
	}
	return engine.YearRange{From: from, To: to}, nil
}
