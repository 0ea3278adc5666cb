// Package chart renders derived metrics as PNG images.
package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"

	"foresight/internal/forecast/engine"
	dErrors "foresight/pkg/domain-errors"
)

const (
	width  = 1024
	height = 480
)

// Series is one named progress curve. Values align with the years passed to
// RenderProgress.
type Series struct {
	Name   string
	Values []float64
}

// RenderProgress draws one line per series over years with the y axis pinned
// to 0..100 and writes the PNG to w.
func RenderProgress(w io.Writer, title string, years []float64, series []Series) error {
	if len(years) < 2 {
		return dErrors.New(dErrors.CodeInvalidInput, "a progress chart needs at least two sample years")
	}
	if len(series) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "a progress chart needs at least one series")
	}

	plotted := make([]gochart.Series, 0, len(series))
	for i, s := range series {
		if len(s.Values) != len(years) {
			return dErrors.Newf(dErrors.CodeInvalidInput,
				"series %q has %d values for %d years", s.Name, len(s.Values), len(years))
		}
		plotted = append(plotted, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: years,
			YValues: s.Values,
			Style: gochart.Style{
				StrokeColor: gochart.GetDefaultColor(i),
				StrokeWidth: 2,
			},
		})
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  "Year",
			Ticks: yearTicks(years[0], years[len(years)-1]),
		},
		YAxis: gochart.YAxis{
			Name:  "Integration Progress (%)",
			Range: &gochart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: plotted,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render progress chart: %w", err)
	}
	return nil
}

// Title names a progress chart after its curve shape.
func Title(mode engine.Mode) string {
	if mode == engine.ModeLinear {
		return "AI Integration Progress Over Time"
	}
	return "Projected Integration Progress by Domain"
}

func yearTicks(from, to float64) []gochart.Tick {
	var ticks []gochart.Tick
	for y := math.Ceil(from); y <= to; y++ {
		ticks = append(ticks, gochart.Tick{Value: y, Label: strconv.Itoa(int(y))})
	}
	return ticks
}
