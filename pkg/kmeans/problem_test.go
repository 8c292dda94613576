package kmeans

import (
	"kmeans-problem/internal/domain"
	"kmeans-problem/internal/infrastructure"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestProblem(t *testing.T, rows [][]float64, k int) *Problem {
	t.Helper()
	dataset, err := domain.NewDataset(rows)
	require.NoError(t, err)
	problem, err := NewProblem(zaptest.NewLogger(t), dataset, k, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return problem
}

var triangle = [][]float64{{0, 0}, {2, 0}, {1, 1}}

func TestNewProblem_InvalidK(t *testing.T) {
	dataset, err := domain.NewDataset(triangle)
	require.NoError(t, err)

	for _, k := range []int{0, -1} {
		_, err := NewProblem(zaptest.NewLogger(t), dataset, k, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidClusterCount)
	}
}

func TestNewProblem_NilRand(t *testing.T) {
	dataset, err := domain.NewDataset(triangle)
	require.NoError(t, err)

	problem, err := NewProblem(zaptest.NewLogger(t), dataset, 2, nil)
	require.NoError(t, err)
	assert.Len(t, problem.RandomSolution(), 2)
}

func TestEvaluate_SingleCluster(t *testing.T) {
	problem := newTestProblem(t, triangle, 1)

	// Центроид (1, 1/3)
	want := (1.0 + 1.0/9) + (1.0 + 1.0/9) + (0 + 4.0/9)
	got, err := problem.Evaluate(domain.Solution{{0, 1, 2}})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 8.0/3, got, 1e-12)
}

func TestEvaluate_IdenticalObservations(t *testing.T) {
	problem := newTestProblem(t, [][]float64{{1, 2}, {1, 2}, {1, 2}, {5, 5}}, 2)

	got, err := problem.Evaluate(domain.Solution{{0, 1, 2}, {3}})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestEvaluate_EmptyClusters(t *testing.T) {
	problem := newTestProblem(t, triangle, 3)

	got, err := problem.Evaluate(domain.Solution{{}, {}, {}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = problem.Evaluate(domain.Solution{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEvaluate_Singletons(t *testing.T) {
	problem := newTestProblem(t, [][]float64{{3.7, -1.2, 9}, {-4, 0.5, 2}, {1e6, 7, -3}}, 3)

	got, err := problem.Evaluate(domain.Solution{{0}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEvaluate_OrderInvariant(t *testing.T) {
	rows := [][]float64{{0.3, 1.7}, {2.2, -0.4}, {5.1, 3.3}, {-1.8, 0.9}, {4.4, 4.4}}
	problem := newTestProblem(t, rows, 2)

	a, err := problem.Evaluate(domain.Solution{{0, 1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := problem.Evaluate(domain.Solution{{2, 0, 1}, {4, 3}})
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-9)
}

func TestEvaluate_ClusterCountNotChecked(t *testing.T) {
	problem := newTestProblem(t, triangle, 2)

	// Лишние кластеры просто суммируются
	got, err := problem.Evaluate(domain.Solution{{0}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = problem.Evaluate(domain.Solution{{0, 1, 2}})
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3, got, 1e-12)
}

func TestEvaluate_IndexOutOfRange(t *testing.T) {
	problem := newTestProblem(t, triangle, 2)

	tests := []struct {
		name     string
		solution domain.Solution
	}{
		{"TooLarge", domain.Solution{{0, 1}, {3}}},
		{"Negative", domain.Solution{{-1}, {2}}},
		{"FarAway", domain.Solution{{0, 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := problem.Evaluate(tt.solution)
			assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
		})
	}
}

func TestRandomSolution_AssignsEveryObservationOnce(t *testing.T) {
	rows := make([][]float64, 50)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}
	problem := newTestProblem(t, rows, 4)

	solution := problem.RandomSolution()
	require.Len(t, solution, 4)

	var all []int
	for _, cluster := range solution {
		all = append(all, cluster...)
	}
	sort.Ints(all)

	want := make([]int, 50)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, all)
	assert.NoError(t, problem.Validate(solution))
}

func TestRandomSolution_MoreClustersThanObservations(t *testing.T) {
	problem := newTestProblem(t, triangle, 10)

	solution := problem.RandomSolution()
	require.Len(t, solution, 10)

	total := 0
	for _, size := range solution.Sizes() {
		total += size
	}
	assert.Equal(t, 3, total)
}

func TestRandomSolutionFrom_Reproducible(t *testing.T) {
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(-i)}
	}
	problem := newTestProblem(t, rows, 3)

	a := problem.RandomSolutionFrom(rand.New(rand.NewSource(42)))
	b := problem.RandomSolutionFrom(rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestRandomSolution_RoughlyUniform(t *testing.T) {
	rows := make([][]float64, 10000)
	for i := range rows {
		rows[i] = []float64{0}
	}
	problem := newTestProblem(t, rows, 4)

	for c, size := range problem.RandomSolution().Sizes() {
		assert.InDelta(t, 2500, size, 300, "cluster %d", c)
	}
}

func TestValidate(t *testing.T) {
	problem := newTestProblem(t, triangle, 2)

	assert.NoError(t, problem.Validate(domain.Solution{{0}, {2}}))
	assert.ErrorIs(t, problem.Validate(domain.Solution{{0, 1, 2}}), domain.ErrClusterCount)
	assert.ErrorIs(t, problem.Validate(domain.Solution{{0, 1}, {1}}), domain.ErrDuplicateIndex)
	assert.ErrorIs(t, problem.Validate(domain.Solution{{0}, {3}}), domain.ErrIndexOutOfRange)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := "3 2\n0 0 a\n2 0 b\n1 1 c\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triangle.txt"), []byte(content), 0o644))

	logger := zaptest.NewLogger(t)
	reader := infrastructure.NewTXTInstanceReader(logger, dir)
	problem, err := Load(logger, reader, "triangle.txt", domain.DefaultK, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, 3, problem.NbObservations())
	assert.Equal(t, 2, problem.NbDimensions())
	assert.Equal(t, 2, problem.K())

	got, err := problem.Evaluate(domain.Solution{{0, 1, 2}, {}})
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3, got, 1e-12)
}

func TestLoad_MissingFile(t *testing.T) {
	logger := zaptest.NewLogger(t)
	reader := infrastructure.NewTXTInstanceReader(logger, t.TempDir())

	_, err := Load(logger, reader, "missing.txt", 2, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
