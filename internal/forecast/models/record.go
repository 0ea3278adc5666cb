package models

import (
	"maps"
	"slices"
	"strings"
)

// BaseYear is the process-wide start year every progress curve originates from.
const BaseYear = 2025

// Record describes one forecast domain: who forecasts it, what they predict and
// when they expect full integration.
//
// Invariants (documented, not enforced):
//   - IntegrationYear >= BaseYear once set
//   - YearlyMilestones keys fall within [BaseYear, IntegrationYear]
//
// A record is populated through NewRecord and the three setters, then handed to
// the catalog and treated as read-only. Each setter replaces its field wholesale.
type Record struct {
	Name             string         `json:"name"`
	Domain           string         `json:"domain"`
	Description      string         `json:"description"`
	Predictions      []string       `json:"predictions"`
	YearlyMilestones map[int]string `json:"yearly_milestones"`

	integrationYear    int
	hasIntegrationYear bool
}

// NewRecord returns a record with no predictions, no milestones and an unset
// integration year.
func NewRecord(name, domain, description string) *Record {
	return &Record{
		Name:             name,
		Domain:           domain,
		Description:      description,
		Predictions:      []string{},
		YearlyMilestones: map[int]string{},
	}
}

// SetPredictions replaces the prediction list.
func (r *Record) SetPredictions(predictions []string) *Record {
	r.Predictions = slices.Clone(predictions)
	if r.Predictions == nil {
		r.Predictions = []string{}
	}
	return r
}

// SetIntegrationYear replaces the integration year.
func (r *Record) SetIntegrationYear(year int) *Record {
	r.integrationYear = year
	r.hasIntegrationYear = true
	return r
}

// SetYearlyMilestones replaces the milestone map.
func (r *Record) SetYearlyMilestones(milestones map[int]string) *Record {
	r.YearlyMilestones = maps.Clone(milestones)
	if r.YearlyMilestones == nil {
		r.YearlyMilestones = map[int]string{}
	}
	return r
}

// IntegrationYear reports the integration year and whether it has been set.
func (r *Record) IntegrationYear() (int, bool) {
	return r.integrationYear, r.hasIntegrationYear
}

// MilestoneYears returns the milestone keys in ascending order.
func (r *Record) MilestoneYears() []int {
	return slices.Sorted(maps.Keys(r.YearlyMilestones))
}

// Label is the display name without the trailing " Agent".
func (r *Record) Label() string {
	label, _, _ := strings.Cut(r.Name, " Agent")
	return label
}

// Clone returns a deep copy that shares no slices or maps with r.
func (r *Record) Clone() *Record {
	c := *r
	c.Predictions = slices.Clone(r.Predictions)
	c.YearlyMilestones = maps.Clone(r.YearlyMilestones)
	return &c
}
