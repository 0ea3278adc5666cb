package engine

import (
	"math"

	"foresight/internal/forecast/models"
)

// Node is a record placed on the unit circle.
type Node struct {
	Label string
	X     float64
	Y     float64
}

// Edge links two related nodes by index, weighted by relationship strength.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Graph is a circular layout of the relationship matrix.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// BuildRelationshipGraph places record i at angle 2πi/n on a unit circle and
// adds one edge for every pair i<j whose strength is positive.
func BuildRelationshipGraph(records []*models.Record, matrix [][]int) Graph {
	n := len(records)
	g := Graph{Nodes: make([]Node, n), Edges: []Edge{}}
	for i, r := range records {
		angle := 2 * math.Pi * float64(i) / float64(n)
		g.Nodes[i] = Node{Label: r.Label(), X: math.Cos(angle), Y: math.Sin(angle)}
	}
	for i := 0; i < n && i < len(matrix); i++ {
		for j := i + 1; j < n && j < len(matrix[i]); j++ {
			if matrix[i][j] > 0 {
				g.Edges = append(g.Edges, Edge{From: i, To: j, Weight: matrix[i][j]})
			}
		}
	}
	return g
}
