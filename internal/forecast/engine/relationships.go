package engine

import "foresight/internal/forecast/models"

// ComputeRelationshipMatrix returns an n x n matrix where M[i][j] counts the
// milestone-year pairs, one from record i and one from record j, that lie at
// most ProximityWindow years apart. The matrix is symmetric and its diagonal is
// zero. Zero records give a 0x0 matrix.
func ComputeRelationshipMatrix(records []*models.Record) [][]int {
	n := len(records)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	years := make([][]int, n)
	for i, r := range records {
		years[i] = r.MilestoneYears()
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			strength := 0
			for _, yi := range years[i] {
				for _, yj := range years[j] {
					if abs(yi-yj) <= ProximityWindow {
						strength++
					}
				}
			}
			m[i][j] = strength
			m[j][i] = strength
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
