// Package blueprint holds the fixed policy roadmap that the dashboard shows next
// to the forecast catalog: three phases of quarter-dated milestones.
package blueprint

import (
	"strconv"
	"strings"

	dErrors "foresight/pkg/domain-errors"
)

// maxOffset is the largest vertical displacement of a milestone marker from
// its phase line.
const maxOffset = 0.4

// Milestone is a quarter-dated blueprint event. Date reads like "2025 Q1".
type Milestone struct {
	Date  string
	Title string
}

// Phase groups consecutive milestones and the decimal-year span it covers.
type Phase struct {
	Name       string
	Start      float64
	End        float64
	Milestones []Milestone
}

// Short is the phase name before the colon, e.g. "Phase 1".
func (p Phase) Short() string {
	short, _, _ := strings.Cut(p.Name, ":")
	return short
}

// Phases returns the roadmap in chronological order. Each call builds a fresh
// copy.
func Phases() []Phase {
	return []Phase{
		{
			Name:  "Phase 1: Foundation",
			Start: 2025,
			End:   2027.5,
			Milestones: []Milestone{
				{"2025 Q1", "OpenAI-US Government Partnership Kickoff (Jan 30)"},
				{"2025 Q2", "Launch of National AI Research Centers"},
				{"2025 Q3", "Implementation of AI Safety Guidelines"},
				{"2025 Q4", "Establishment of AI Economic Zones"},
				{"2026 Q1", "Roll-out of AI Education Initiative"},
				{"2026 Q2", "Public-Private AI Infrastructure Partnership"},
				{"2026 Q4", "First Wave of AI Industry Standards"},
				{"2027 Q2", "Completion of Initial AI Safety Framework"},
			},
		},
		{
			Name:  "Phase 2: Acceleration",
			Start: 2027.5,
			End:   2029.5,
			Milestones: []Milestone{
				{"2027 Q3", "Launch of AI Workforce Transition Program"},
				{"2027 Q4", "Implementation of Cross-Border AI Collaboration"},
				{"2028 Q1", "Deployment of AI-Enhanced Public Services"},
				{"2028 Q3", "Establishment of AI Innovation Hubs"},
				{"2028 Q4", "Roll-out of National AI Infrastructure"},
				{"2029 Q2", "Integration of AI in Critical Industries"},
			},
		},
		{
			Name:  "Phase 3: Maturation",
			Start: 2029.5,
			End:   2031.5,
			Milestones: []Milestone{
				{"2029 Q3", "Achievement of AI Education Milestones"},
				{"2029 Q4", "Full Implementation of AI Safety Standards"},
				{"2030 Q1", "Completion of AI Economic Zone Network"},
				{"2030 Q3", "Establishment of Global AI Partnership"},
				{"2030 Q4", "Launch of Advanced AI Research Initiatives"},
				{"2031 Q2", "Achievement of Full AI Integration Goals"},
				{"2032 Q1", "Global AI Governance Framework"},
				{"2032 Q4", "Advanced AI-Human Collaboration Systems"},
				{"2033 Q2", "Universal AI Education Achievement"},
				{"2034 Q1", "Quantum-AI Integration Milestone"},
				{"2034 Q4", "Sustainable AI Infrastructure Complete"},
				{"2035 Q2", "Full Societal AI Integration Achieved"},
			},
		},
	}
}

// ParseQuarter converts "YYYY Qn" into a decimal year at the start of the
// quarter: "2025 Q3" is 2025.5.
func ParseQuarter(date string) (float64, error) {
	fields := strings.Fields(date)
	if len(fields) != 2 {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "quarter %q must look like \"2025 Q1\"", date)
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "quarter year is not an integer")
	}
	q := fields[1]
	if len(q) != 2 || (q[0] != 'Q' && q[0] != 'q') || q[1] < '1' || q[1] > '4' {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "quarter %q must be Q1..Q4", q)
	}
	return float64(year) + float64(q[1]-'1')*0.25, nil
}

// WaterfallOffset staggers markers within a phase so labels do not overlap:
// even indexes move down, odd indexes move up, growing toward maxOffset.
func WaterfallOffset(index, total int) float64 {
	if total <= 1 {
		return 0
	}
	span := float64(total - 1)
	if index%2 == 0 {
		return -maxOffset * (float64(index) / span)
	}
	return maxOffset * (float64(index+1) / span)
}

// Point is a milestone positioned for plotting.
type Point struct {
	Phase      string
	PhaseIndex int
	Date       string
	Title      string
	X          float64
	Y          float64
}

// Points flattens phases into plot coordinates: X is the decimal date and Y the
// phase index shifted by its waterfall offset.
func Points(phases []Phase) ([]Point, error) {
	var points []Point
	for i, p := range phases {
		for j, m := range p.Milestones {
			x, err := ParseQuarter(m.Date)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, p.Name+": "+m.Title)
			}
			points = append(points, Point{
				Phase:      p.Name,
				PhaseIndex: i,
				Date:       m.Date,
				Title:      m.Title,
				X:          x,
				Y:          float64(i) + WaterfallOffset(j, len(p.Milestones)),
			})
		}
	}
	return points, nil
}
