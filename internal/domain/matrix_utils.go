package domain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats описывает одно измерение набора данных
type ColumnStats struct {
	Mean, StdDev float64
	Min, Max     float64
}

// Stats calculates per-dimension statistics of the dataset.
func (d *Dataset) Stats() []ColumnStats {
	stats := make([]ColumnStats, d.NbDimensions)
	col := make([]float64, d.NbObservations)

	for j := range d.NbDimensions {
		mat.Col(col, j, d.Coordinates)
		mean, std := stat.MeanStdDev(col, nil)
		if d.NbObservations == 1 {
			std = 0
		}
		stats[j] = ColumnStats{
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(col),
			Max:    floats.Max(col),
		}
	}
	return stats
}
