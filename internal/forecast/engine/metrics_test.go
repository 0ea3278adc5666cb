package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foresight/internal/forecast/catalog"
	"foresight/internal/forecast/models"
	dErrors "foresight/pkg/domain-errors"
)

func TestMilestoneDensity(t *testing.T) {
	records := catalog.All()
	d, err := ComputeMilestoneDensity(records, YearRange{From: 2025, To: 2035})
	require.NoError(t, err)

	require.Len(t, d.Counts, len(records))
	assert.Equal(t, 2025, d.Years[0])
	assert.Equal(t, 2035, d.Years[len(d.Years)-1])

	for i, r := range records {
		assert.Equal(t, r.Name, d.Domains[i])
		sum := 0
		for _, c := range d.Counts[i] {
			assert.Contains(t, []int{0, 1}, c)
			sum += c
		}
		assert.Equal(t, len(r.YearlyMilestones), sum, "%s row sum", r.Name)
	}
}

func TestMilestoneDensityPartialRange(t *testing.T) {
	r := record("A", 2030, 2025, 2027, 2029)
	d, err := ComputeMilestoneDensity([]*models.Record{r}, YearRange{From: 2026, To: 2027})
	require.NoError(t, err)
	assert.Equal(t, []int{2026, 2027}, d.Years)
	assert.Equal(t, [][]int{{0, 1}}, d.Counts)
}

func TestMilestoneDensityEdgeCases(t *testing.T) {
	t.Run("reversed range", func(t *testing.T) {
		_, err := ComputeMilestoneDensity(catalog.All(), YearRange{From: 2030, To: 2025})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("range wider than the limit", func(t *testing.T) {
		_, err := ComputeMilestoneDensity(catalog.All(), YearRange{From: 0, To: 2_000_000_000})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("full int range does not wrap", func(t *testing.T) {
		_, err := ComputeMilestoneDensity(nil, YearRange{From: math.MinInt, To: math.MaxInt})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Nil(t, YearRange{From: math.MinInt, To: math.MaxInt}.Years())
	})

	t.Run("widest accepted range", func(t *testing.T) {
		d, err := ComputeMilestoneDensity(catalog.All(), YearRange{From: 2025, To: 2025 + maxYears - 1})
		require.NoError(t, err)
		assert.Len(t, d.Years, maxYears)
	})

	t.Run("empty catalog", func(t *testing.T) {
		d, err := ComputeMilestoneDensity(nil, YearRange{From: 2025, To: 2026})
		require.NoError(t, err)
		assert.Empty(t, d.Counts)
		assert.Empty(t, d.Domains)
		assert.Equal(t, []int{2025, 2026}, d.Years)
	})
}

func TestRelationshipMatrixScenario(t *testing.T) {
	a := record("A", 2030, 2026)
	b := record("B", 2030, 2027)
	c := record("C", 2031, 2030)

	m := ComputeRelationshipMatrix([]*models.Record{a, b, c})
	assert.Equal(t, 1, m[0][1])
	assert.Equal(t, 0, m[0][2])
	assert.Equal(t, 0, m[1][2])
}

func TestRelationshipMatrixProperties(t *testing.T) {
	records := catalog.All()
	m := ComputeRelationshipMatrix(records)
	require.Len(t, m, len(records))

	for i := range m {
		require.Len(t, m[i], len(records))
		assert.Equal(t, 0, m[i][i], "diagonal at %d", i)
		for j := range m[i] {
			assert.Equal(t, m[i][j], m[j][i], "symmetry at %d,%d", i, j)
			assert.GreaterOrEqual(t, m[i][j], 0)
		}
	}

	// Every catalog record has milestones 2025..2030: 6 same-year pairs plus
	// 10 adjacent-year pairs.
	assert.Equal(t, 16, m[0][1])
}

func TestRelationshipMatrixSmallInputs(t *testing.T) {
	assert.Empty(t, ComputeRelationshipMatrix(nil))
	assert.Equal(t, [][]int{{0}}, ComputeRelationshipMatrix([]*models.Record{record("Solo", 2030, 2026, 2027)}))
}

func TestRelationshipGraph(t *testing.T) {
	records := []*models.Record{
		record("North Agent", 2030, 2026),
		record("West Agent", 2030, 2027),
		record("South Agent", 2031, 2030),
		record("East Agent", 2031, 2031),
	}
	g := BuildRelationshipGraph(records, ComputeRelationshipMatrix(records))

	require.Len(t, g.Nodes, 4)
	assert.Equal(t, "North", g.Nodes[0].Label)
	assert.InDelta(t, 1.0, g.Nodes[0].X, 1e-9)
	assert.InDelta(t, 0.0, g.Nodes[0].Y, 1e-9)
	assert.InDelta(t, 0.0, g.Nodes[1].X, 1e-9)
	assert.InDelta(t, 1.0, g.Nodes[1].Y, 1e-9)
	assert.InDelta(t, -1.0, g.Nodes[2].X, 1e-9)

	assert.Equal(t, []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}, g.Edges)
}

func TestRelationshipGraphEmpty(t *testing.T) {
	g := BuildRelationshipGraph(nil, nil)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestBuildTimeline(t *testing.T) {
	rows, err := BuildTimeline(catalog.All())
	require.NoError(t, err)
	require.Len(t, rows, 7)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].End, rows[i].End)
	}
	for _, row := range rows {
		assert.Equal(t, models.BaseYear, row.Start)
		assert.NotContains(t, row.Label, " Agent")
	}

	// 2031 ties keep catalog order.
	assert.Equal(t, "Vision and Purpose", rows[0].Label)
	assert.Equal(t, "Regulation and Ethics", rows[1].Label)
	assert.Equal(t, "Transparency and Public Trust", rows[2].Label)
	assert.Equal(t, "Infrastructure Development", rows[len(rows)-1].Label)
}

func TestBuildTimelineUnsetIntegrationYear(t *testing.T) {
	_, err := BuildTimeline([]*models.Record{models.NewRecord("Unset", "", "")})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConfiguration))
}
