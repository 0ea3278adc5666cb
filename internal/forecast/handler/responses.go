package handler

import (
	"foresight/internal/forecast/blueprint"
	"foresight/internal/forecast/engine"
	"foresight/internal/forecast/models"
	"foresight/internal/forecast/service"
)

// RecordResponse is the wire form of a forecast record. Milestones are listed
// in year order.
type RecordResponse struct {
	Name            string              `json:"name"`
	Label           string              `json:"label"`
	Domain          string              `json:"domain"`
	Description     string              `json:"description"`
	Predictions     []string            `json:"predictions"`
	IntegrationYear *int                `json:"integration_year,omitempty"`
	Milestones      []MilestoneResponse `json:"milestones"`
}

type MilestoneResponse struct {
	Year int    `json:"year"`
	Text string `json:"text"`
}

type CatalogResponse struct {
	Records []RecordResponse `json:"records"`
}

type ProgressResponse struct {
	Mode   string           `json:"mode"`
	Years  []float64        `json:"years"`
	Series []SeriesResponse `json:"series"`
}

type SeriesResponse struct {
	Name   string    `json:"name"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type DensityResponse struct {
	Domains []string `json:"domains"`
	Years   []int    `json:"years"`
	Counts  [][]int  `json:"counts"`
}

type RelationshipResponse struct {
	Labels []string `json:"labels"`
	Matrix [][]int  `json:"matrix"`
}

type GraphResponse struct {
	Nodes []NodeResponse `json:"nodes"`
	Edges []EdgeResponse `json:"edges"`
}

type NodeResponse struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type EdgeResponse struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

type TimelineResponse struct {
	Rows []TimelineRowResponse `json:"rows"`
}

type TimelineRowResponse struct {
	Label       string `json:"label"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}

type BlueprintResponse struct {
	Phases []PhaseResponse `json:"phases"`
	Points []PointResponse `json:"points"`
}

type PhaseResponse struct {
	Name       string                  `json:"name"`
	Short      string                  `json:"short"`
	Start      float64                 `json:"start"`
	End        float64                 `json:"end"`
	Milestones []BlueprintMilestoneResponse `json:"milestones"`
}

type BlueprintMilestoneResponse struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

type PointResponse struct {
	Phase      string  `json:"phase"`
	PhaseIndex int     `json:"phase_index"`
	Date       string  `json:"date"`
	Title      string  `json:"title"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

func toRecordResponse(r *models.Record) RecordResponse {
	resp := RecordResponse{
		Name:        r.Name,
		Label:       r.Label(),
		Domain:      r.Domain,
		Description: r.Description,
		Predictions: r.Predictions,
		Milestones:  make([]MilestoneResponse, 0, len(r.YearlyMilestones)),
	}
	if year, ok := r.IntegrationYear(); ok {
		resp.IntegrationYear = &year
	}
	for _, y := range r.MilestoneYears() {
		resp.Milestones = append(resp.Milestones, MilestoneResponse{Year: y, Text: r.YearlyMilestones[y]})
	}
	return resp
}

func toCatalogResponse(records []*models.Record) CatalogResponse {
	resp := CatalogResponse{Records: make([]RecordResponse, 0, len(records))}
	for _, r := range records {
		resp.Records = append(resp.Records, toRecordResponse(r))
	}
	return resp
}

func toProgressResponse(res *service.ProgressResult) ProgressResponse {
	resp := ProgressResponse{
		Mode:   string(res.Mode),
		Years:  res.Years,
		Series: make([]SeriesResponse, 0, len(res.Series)),
	}
	for _, s := range res.Series {
		resp.Series = append(resp.Series, SeriesResponse{Name: s.Name, Label: s.Label, Values: s.Values})
	}
	return resp
}

func toDensityResponse(d *engine.Density) DensityResponse {
	return DensityResponse{Domains: d.Domains, Years: d.Years, Counts: d.Counts}
}

func toGraphResponse(g *engine.Graph) GraphResponse {
	resp := GraphResponse{
		Nodes: make([]NodeResponse, 0, len(g.Nodes)),
		Edges: make([]EdgeResponse, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		resp.Nodes = append(resp.Nodes, NodeResponse{Label: n.Label, X: n.X, Y: n.Y})
	}
	for _, e := range g.Edges {
		resp.Edges = append(resp.Edges, EdgeResponse{From: e.From, To: e.To, Weight: e.Weight})
	}
	return resp
}

func toTimelineResponse(rows []engine.TimelineRow) TimelineResponse {
	resp := TimelineResponse{Rows: make([]TimelineRowResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, TimelineRowResponse{
			Label:       row.Label,
			Domain:      row.Domain,
			Description: row.Description,
			Start:       row.Start,
			End:         row.End,
		})
	}
	return resp
}

func toBlueprintResponse(bp *service.BlueprintResult) BlueprintResponse {
	resp := BlueprintResponse{
		Phases: make([]PhaseResponse, 0, len(bp.Phases)),
		Points: make([]PointResponse, 0, len(bp.Points)),
	}
	for _, p := range bp.Phases {
		resp.Phases = append(resp.Phases, toPhaseResponse(p))
	}
	for _, pt := range bp.Points {
		resp.Points = append(resp.Points, PointResponse{
			Phase:      pt.Phase,
			PhaseIndex: pt.PhaseIndex,
			Date:       pt.Date,
			Title:      pt.Title,
			X:          pt.X,
			Y:          pt.Y,
		})
	}
	return resp
}

func toPhaseResponse(p blueprint.Phase) PhaseResponse {
	ms := make([]BlueprintMilestoneResponse, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		ms = append(ms, BlueprintMilestoneResponse{Date: m.Date, Title: m.Title})
	}
	return PhaseResponse{Name: p.Name, Short: p.Short(), Start: p.Start, End: p.End, Milestones: ms}
}
