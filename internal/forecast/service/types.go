package service

import (
	"fmt"
	"strconv"

	"foresight/internal/forecast/blueprint"
	"foresight/internal/forecast/engine"
)

// ProgressRequest selects the curve shape and the sample grid.
type ProgressRequest struct {
	Mode engine.Mode
	From float64
	To   float64
	Step float64
}

// DefaultProgressRequest samples quarterly logistic curves from 2025 to 2035.
func DefaultProgressRequest() ProgressRequest {
	return ProgressRequest{Mode: engine.ModeLogistic, From: 2025, To: 2035, Step: 0.25}
}

func (r ProgressRequest) cacheKey() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("%s:%s:%s:%s:%s", OpProgress, r.Mode, f(r.From), f(r.To), f(r.Step))
}

// ProgressSeries is one record's curve.
type ProgressSeries struct {
	Name   string
	Label  string
	Values []float64
}

// ProgressResult holds curves in catalog order, aligned with Years.
type ProgressResult struct {
	Mode   engine.Mode
	Years  []float64
	Series []ProgressSeries
}

// RelationshipResult pairs the matrix with the label of each row and column.
type RelationshipResult struct {
	Labels []string
	Matrix [][]int
}

// BlueprintResult is the roadmap with plot coordinates.
type BlueprintResult struct {
	Phases []blueprint.Phase
	Points []blueprint.Point
}
