package forecast

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	DecodeResponse(v any) error
}

// RegisterSteps registers catalog and derived-metric assertions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &forecastSteps{tc: tc}

	ctx.Step(`^the catalog should list (\d+) records$`, steps.catalogShouldList)
	ctx.Step(`^the record should have integration year (\d+)$`, steps.recordIntegrationYear)
	ctx.Step(`^every progress series should end at (\d+)$`, steps.everySeriesEndsAt)
	ctx.Step(`^the relationship matrix should be symmetric with a zero diagonal$`, steps.matrixSymmetric)
	ctx.Step(`^every density row should sum to (\d+)$`, steps.densityRowsSumTo)
}

type forecastSteps struct {
	tc TestContext
}

func (s *forecastSteps) catalogShouldList(ctx context.Context, n int) error {
	var resp struct {
		Records []map[string]any `json:"records"`
	}
	if err := s.tc.DecodeResponse(&resp); err != nil {
		return err
	}
	if len(resp.Records) != n {
		return fmt.Errorf("expected %d records, got %d", n, len(resp.Records))
	}
	return nil
}

func (s *forecastSteps) recordIntegrationYear(ctx context.Context, year int) error {
	var resp struct {
		IntegrationYear *int `json:"integration_year"`
	}
	if err := s.tc.DecodeResponse(&resp); err != nil {
		return err
	}
	if resp.IntegrationYear == nil || *resp.IntegrationYear != year {
		return fmt.Errorf("expected integration year %d, got %v", year, resp.IntegrationYear)
	}
	return nil
}

func (s *forecastSteps) everySeriesEndsAt(ctx context.Context, want int) error {
	var resp struct {
		Series []struct {
			Name   string    `json:"name"`
			Values []float64 `json:"values"`
		} `json:"series"`
	}
	if err := s.tc.DecodeResponse(&resp); err != nil {
		return err
	}
	if len(resp.Series) == 0 {
		return fmt.Errorf("no progress series in response")
	}
	for _, series := range resp.Series {
		if len(series.Values) == 0 {
			return fmt.Errorf("%s has no values", series.Name)
		}
		if last := series.Values[len(series.Values)-1]; last != float64(want) {
			return fmt.Errorf("%s ends at %g, expected %d", series.Name, last, want)
		}
	}
	return nil
}

func (s *forecastSteps) matrixSymmetric(ctx context.Context) error {
	var resp struct {
		Matrix [][]int `json:"matrix"`
	}
	if err := s.tc.DecodeResponse(&resp); err != nil {
		return err
	}
	for i := range resp.Matrix {
		if resp.Matrix[i][i] != 0 {
			return fmt.Errorf("diagonal at %d is %d", i, resp.Matrix[i][i])
		}
		for j := range resp.Matrix {
			if resp.Matrix[i][j] != resp.Matrix[j][i] {
				return fmt.Errorf("matrix not symmetric at %d,%d", i, j)
			}
		}
	}
	return nil
}

func (s *forecastSteps) densityRowsSumTo(ctx context.Context, want int) error {
	var resp struct {
		Domains []string `json:"domains"`
		Counts  [][]int  `json:"counts"`
	}
	if err := s.tc.DecodeResponse(&resp); err != nil {
		return err
	}
	for i, row := range resp.Counts {
		sum := 0
		for _, c := range row {
			sum += c
		}
		if sum != want {
			return fmt.Errorf("%s has %d milestones, expected %d", resp.Domains[i], sum, want)
		}
	}
	return nil
}
