// Package report serves the static comparison report offered for download.
package report

import _ "embed"

const (
	// ComparisonFilename is the suggested download name.
	ComparisonFilename = "ai_integration_approaches_comparison.md"
	// ContentType is the media type of every report.
	ContentType = "text/markdown; charset=utf-8"
)

//go:embed comparison.md
var comparison []byte

// Comparison returns a copy of the comparison report as UTF-8 markdown.
func Comparison() []byte {
	out := make([]byte, len(comparison))
	copy(out, comparison)
	return out
}
