package kmeans

import (
	"fmt"
	"kmeans-problem/internal/domain"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Problem - экземпляр задачи k-средних: набор наблюдений и число кластеров.
// После создания набор данных не меняется, поэтому Evaluate можно
// вызывать из нескольких горутин. RandomSolution использует собственный
// генератор и не синхронизирован.
type Problem struct {
	logger  *zap.Logger
	dataset *domain.Dataset
	k       int
	rng     *rand.Rand
}

// NewProblem creates a problem over dataset with k clusters. A nil rng is
// replaced by a private time-seeded generator.
func NewProblem(logger *zap.Logger, dataset *domain.Dataset, k int, rng *rand.Rand) (*Problem, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidClusterCount, k)
	}
	if dataset == nil {
		return nil, domain.ErrInvalidFileFormat
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Problem{
		logger:  logger,
		dataset: dataset,
		k:       k,
		rng:     rng,
	}, nil
}

// Load reads the instance file and creates the problem.
func Load(logger *zap.Logger, reader domain.InstanceReader, path string, k int, rng *rand.Rand) (*Problem, error) {
	dataset, err := reader.ReadInstance(path)
	if err != nil {
		return nil, err
	}
	return NewProblem(logger, dataset, k, rng)
}

func (p *Problem) K() int { return p.k }

func (p *Problem) NbObservations() int { return p.dataset.NbObservations }

func (p *Problem) NbDimensions() int { return p.dataset.NbDimensions }

func (p *Problem) Dataset() *domain.Dataset { return p.dataset }

// Evaluate возвращает суммарную внутрикластерную дисперсию решения:
// сумму квадратов евклидовых расстояний от наблюдений до центроидов их
// кластеров. Пустой кластер даёт 0. Число кластеров не проверяется.
func (p *Problem) Evaluate(solution domain.Solution) (float64, error) {
	d := p.dataset.NbDimensions
	centroid := make([]float64, d)
	diff := make([]float64, d)

	var total float64
	for c, cluster := range solution {
		if len(cluster) == 0 {
			continue
		}

		// Центроид кластера
		for i := range centroid {
			centroid[i] = 0
		}
		for _, idx := range cluster {
			if idx < 0 || idx >= p.dataset.NbObservations {
				return 0, fmt.Errorf("%w: index %d in cluster %d, want [0, %d)",
					domain.ErrIndexOutOfRange, idx, c, p.dataset.NbObservations)
			}
			floats.Add(centroid, p.dataset.Observation(idx))
		}
		floats.Scale(1/float64(len(cluster)), centroid)

		// Сумма квадратов расстояний
		var variance float64
		for _, idx := range cluster {
			floats.SubTo(diff, p.dataset.Observation(idx), centroid)
			variance += floats.Dot(diff, diff)
		}

		total += variance
	}

	p.logger.Debug("Solution evaluated",
		zap.Int("clusters", len(solution)),
		zap.Float64("variance", total))

	return total, nil
}

// RandomSolution assigns every observation to a uniformly chosen cluster
// using the problem's own generator.
func (p *Problem) RandomSolution() domain.Solution {
	return p.RandomSolutionFrom(p.rng)
}

// RandomSolutionFrom does the same as RandomSolution with a caller-owned
// generator.
func (p *Problem) RandomSolutionFrom(rng *rand.Rand) domain.Solution {
	clusters := make(domain.Solution, p.k)
	for i := range clusters {
		clusters[i] = domain.Cluster{}
	}
	for idx := range p.dataset.NbObservations {
		c := rng.Intn(p.k)
		clusters[c] = append(clusters[c], idx)
	}
	return clusters
}

// Validate проверяет решение строго: ровно k кластеров, индексы в
// диапазоне и без повторов.
func (p *Problem) Validate(solution domain.Solution) error {
	return solution.Validate(p.k, p.dataset.NbObservations)
}
