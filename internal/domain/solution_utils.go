package domain

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sizes returns the number of observations in each cluster.
func (s Solution) Sizes() []int {
	sizes := make([]int, len(s))
	for i, cluster := range s {
		sizes[i] = len(cluster)
	}
	return sizes
}

// Validate checks that the solution has exactly k clusters, that every index
// lies in [0, n) and that no index is used twice. Unassigned observations
// are allowed.
func (s Solution) Validate(k, n int) error {
	if len(s) != k {
		return fmt.Errorf("%w: got %d clusters, want %d", ErrClusterCount, len(s), k)
	}

	seen := roaring.New()
	for c, cluster := range s {
		for _, idx := range cluster {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: index %d in cluster %d, want [0, %d)", ErrIndexOutOfRange, idx, c, n)
			}
			if !seen.CheckedAdd(uint32(idx)) {
				return fmt.Errorf("%w: index %d", ErrDuplicateIndex, idx)
			}
		}
	}
	return nil
}

// Assignment переводит решение в вектор меток длины n.
// Ненайденные наблюдения получают Unassigned.
func (s Solution) Assignment(n int) ([]int, error) {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Unassigned
	}

	for c, cluster := range s {
		for _, idx := range cluster {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: index %d in cluster %d, want [0, %d)", ErrIndexOutOfRange, idx, c, n)
			}
			if labels[idx] != Unassigned {
				return nil, fmt.Errorf("%w: index %d", ErrDuplicateIndex, idx)
			}
			labels[idx] = c
		}
	}
	return labels, nil
}

// FromAssignment строит решение из k кластеров по вектору меток.
func FromAssignment(labels []int, k int) (Solution, error) {
	if k < 1 {
		return nil, ErrInvalidClusterCount
	}

	solution := make(Solution, k)
	for i := range solution {
		solution[i] = Cluster{}
	}

	for idx, c := range labels {
		if c == Unassigned {
			continue
		}
		if c < 0 || c >= k {
			return nil, fmt.Errorf("%w: observation %d has cluster %d, want [0, %d)", ErrInvalidFileFormat, idx, c, k)
		}
		solution[c] = append(solution[c], idx)
	}
	return solution, nil
}
