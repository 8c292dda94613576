package domain

import "math/rand"

// Problem оценивает кандидатов задачи k-средних
type Problem interface {
	K() int
	Evaluate(solution Solution) (float64, error)
	RandomSolutionFrom(rng *rand.Rand) Solution
}

// SampleTask задача оценки одного случайного решения
type SampleTask struct {
	ID   int
	Seed int64
}
