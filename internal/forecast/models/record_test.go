package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord("Test Agent", "Testing", "A record under test.")

	assert.Equal(t, "Test Agent", r.Name)
	assert.Equal(t, "Testing", r.Domain)
	assert.Equal(t, "A record under test.", r.Description)
	assert.Empty(t, r.Predictions)
	assert.NotNil(t, r.Predictions)
	assert.Empty(t, r.YearlyMilestones)

	_, ok := r.IntegrationYear()
	assert.False(t, ok, "integration year starts unset")
}

func TestSettersReplace(t *testing.T) {
	t.Run("predictions are replaced, not merged", func(t *testing.T) {
		r := NewRecord("A", "d", "x").SetPredictions([]string{"one", "two"})
		r.SetPredictions([]string{"three"})
		assert.Equal(t, []string{"three"}, r.Predictions)
	})

	t.Run("milestones are replaced, not merged", func(t *testing.T) {
		r := NewRecord("A", "d", "x").SetYearlyMilestones(map[int]string{2025: "a", 2026: "b"})
		r.SetYearlyMilestones(map[int]string{2030: "c"})
		assert.Equal(t, map[int]string{2030: "c"}, r.YearlyMilestones)
	})

	t.Run("integration year is replaced", func(t *testing.T) {
		r := NewRecord("A", "d", "x").SetIntegrationYear(2030)
		r.SetIntegrationYear(2032)
		year, ok := r.IntegrationYear()
		require.True(t, ok)
		assert.Equal(t, 2032, year)
	})

	t.Run("nil inputs leave empty collections", func(t *testing.T) {
		r := NewRecord("A", "d", "x").SetPredictions(nil).SetYearlyMilestones(nil)
		assert.NotNil(t, r.Predictions)
		assert.NotNil(t, r.YearlyMilestones)
	})

	t.Run("setters copy their input", func(t *testing.T) {
		preds := []string{"p"}
		ms := map[int]string{2026: "m"}
		r := NewRecord("A", "d", "x").SetPredictions(preds).SetYearlyMilestones(ms)
		preds[0] = "changed"
		ms[2027] = "added"
		assert.Equal(t, []string{"p"}, r.Predictions)
		assert.Len(t, r.YearlyMilestones, 1)
	})
}

func TestMilestoneYearsSorted(t *testing.T) {
	r := NewRecord("A", "d", "x").SetYearlyMilestones(map[int]string{2029: "c", 2025: "a", 2027: "b"})
	assert.Equal(t, []int{2025, 2027, 2029}, r.MilestoneYears())
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "National Security Agent", expected: "National Security"},
		{name: "Plain", expected: "Plain"},
		{name: "Agent Smith Agent", expected: "Agent Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewRecord(tt.name, "", "").Label())
		})
	}
}

func TestClone(t *testing.T) {
	r := NewRecord("A", "d", "x").
		SetPredictions([]string{"p"}).
		SetYearlyMilestones(map[int]string{2026: "m"}).
		SetIntegrationYear(2030)

	c := r.Clone()
	assert.Equal(t, r, c)
	assert.NotSame(t, r, c)

	c.Predictions[0] = "changed"
	c.YearlyMilestones[2027] = "added"
	assert.Equal(t, "p", r.Predictions[0])
	assert.Len(t, r.YearlyMilestones, 1)

	year, ok := c.IntegrationYear()
	assert.True(t, ok)
	assert.Equal(t, 2030, year)
}
