// Package engine derives chart-ready metrics from forecast records.
//
// Every function here is pure: no I/O, no shared state, no caching. Inputs are
// read, never modified, so callers may run them concurrently on the same
// catalog and memoize results however they like.
package engine

const (
	// LogisticSteepness controls how sharply the S-curve rises around a
	// domain's midpoint.
	LogisticSteepness = 10.0

	// ProximityWindow is the largest gap, in years, between two milestones
	// that still counts them as related.
	ProximityWindow = 1
)

// Mode selects the progress curve shape.
type Mode string

const (
	ModeLogistic Mode = "logistic"
	ModeLinear   Mode = "linear"
)

// ParseMode maps a query value to a Mode. Empty means logistic.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "", ModeLogistic:
		return ModeLogistic, true
	case ModeLinear:
		return ModeLinear, true
	default:
		return "", false
	}
}
