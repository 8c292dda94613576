package infrastructure

import (
	"fmt"
	"kmeans-problem/internal/domain"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type TXTAssignmentReader struct {
	logger *zap.Logger
}

func NewTXTAssignmentReader(logger *zap.Logger) *TXTAssignmentReader {
	return &TXTAssignmentReader{logger: logger}
}

// ReadAssignment читает файл вида "<наблюдение> <кластер>" и собирает
// решение из k кластеров. Отрицательный кластер означает, что наблюдение
// не назначено. Индексы наблюдений должны лежать в [0, nbObservations).
func (r *TXTAssignmentReader) ReadAssignment(filename string, k, nbObservations int) (domain.Solution, error) {
	lines, err := readLines(filename)
	if err != nil {
		return nil, err
	}

	assignment := make([]int, nbObservations)
	for i := range assignment {
		assignment[i] = domain.Unassigned
	}

	seen := make(map[int]struct{})
	assigned := 0
	headerSeen := false
	for _, line := range lines {
		fields := strings.Fields(line.text)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			// Допускается одна строка заголовка
			if !headerSeen && assigned == 0 {
				headerSeen = true
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line.number, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: missing cluster", domain.ErrInvalidFileFormat, line.number)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line.number, err)
		}

		if idx < 0 {
			return nil, fmt.Errorf("%w: line %d: negative observation %d", domain.ErrInvalidFileFormat, line.number, idx)
		}
		if idx >= nbObservations {
			return nil, fmt.Errorf("%w: line %d: observation %d, want [0, %d)",
				domain.ErrIndexOutOfRange, line.number, idx, nbObservations)
		}
		if _, ok := seen[idx]; ok {
			return nil, fmt.Errorf("%w: line %d: observation %d", domain.ErrDuplicateIndex, line.number, idx)
		}
		if c < 0 {
			c = domain.Unassigned
		}
		seen[idx] = struct{}{}
		assignment[idx] = c
		assigned++
	}

	solution, err := domain.FromAssignment(assignment, k)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Assignment loaded",
		zap.String("file", filename),
		zap.Int("assigned", assigned),
		zap.Ints("sizes", solution.Sizes()))

	return solution, nil
}
