package app

import (
	"context"
	"fmt"
	"kmeans-problem/internal/domain"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// SeedReport итог случайного посева
type SeedReport struct {
	Seed    int64
	Samples int
	Best    []*domain.Candidate
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// BaselineSeeder draws random solutions and keeps the best scored ones.
type BaselineSeeder struct {
	logger  *zap.Logger
	problem domain.Problem
	config  *domain.Config
}

func NewBaselineSeeder(logger *zap.Logger, problem domain.Problem, config *domain.Config) *BaselineSeeder {
	return &BaselineSeeder{
		logger:  logger,
		problem: problem,
		config:  config,
	}
}

// Seed оценивает NSamples случайных решений на Workers горутинах.
// Каждое решение строится своим генератором, зерно которого берётся из
// главного генератора, поэтому при фиксированном Seed результат не зависит
// от порядка выполнения.
func (s *BaselineSeeder) Seed(ctx context.Context) (*SeedReport, error) {
	if s.config.NSamples < 1 {
		return nil, fmt.Errorf("nsamples must be positive, got %d", s.config.NSamples)
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewSource(seed))

	s.logger.Info("Starting baseline seeding",
		zap.Int64("seed", seed),
		zap.Int("samples", s.config.NSamples),
		zap.Int("workers", s.config.Workers),
		zap.Int("k", s.problem.K()))

	candidates := make([]*domain.Candidate, s.config.NSamples)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.config.Workers))

	// Отправляем задачи
	for i := range s.config.NSamples {
		if gctx.Err() != nil {
			break
		}
		task := domain.SampleTask{ID: i, Seed: master.Int63()}
		g.Go(func() error {
			candidate, err := s.sample(task)
			if err != nil {
				return err
			}
			candidates[task.ID] = candidate
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Сортируем по оценке
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = c.Score
	}
	mean, std := stat.MeanStdDev(scores, nil)
	if len(scores) == 1 {
		std = 0
	}

	// Берем лучшие NBest решений
	nBest := min(max(1, s.config.NBest), len(candidates))

	report := &SeedReport{
		Seed:    seed,
		Samples: len(candidates),
		Best:    candidates[:nBest],
		Mean:    mean,
		StdDev:  std,
		Min:     scores[0],
		Max:     scores[len(scores)-1],
	}

	s.logger.Info("Baseline seeding completed",
		zap.Float64("best", report.Min),
		zap.Float64("mean", report.Mean),
		zap.Float64("std", report.StdDev),
		zap.Float64("worst", report.Max))

	return report, nil
}

func (s *BaselineSeeder) sample(task domain.SampleTask) (*domain.Candidate, error) {
	rng := rand.New(rand.NewSource(task.Seed))
	solution := s.problem.RandomSolutionFrom(rng)

	score, err := s.problem.Evaluate(solution)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Sample scored",
		zap.Int("id", task.ID),
		zap.Float64("score", score))

	return &domain.Candidate{Solution: solution, Score: score}, nil
}
