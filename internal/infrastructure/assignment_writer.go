package infrastructure

import (
	"bufio"
	"fmt"
	"kmeans-problem/internal/domain"
	"os"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

type TXTAssignmentWriter struct {
	logger   *zap.Logger
	decimals int
}

func NewTXTAssignmentWriter(logger *zap.Logger, decimals int) *TXTAssignmentWriter {
	return &TXTAssignmentWriter{logger: logger, decimals: decimals}
}

// WriteAssignment пишет метку кластера для каждого наблюдения.
// meta записывается в начало файла строками комментариев.
func (w *TXTAssignmentWriter) WriteAssignment(filename string, candidate *domain.Candidate, nbObservations int, meta map[string]string) error {
	labels, err := candidate.Solution.Assignment(nbObservations)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	// Комментарии: оценка и метаданные в стабильном порядке
	fmt.Fprintf(writer, "# score: %s\n", strconv.FormatFloat(candidate.Score, 'f', w.decimals, 64))
	fmt.Fprintf(writer, "# clusters: %d\n", len(candidate.Solution))
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(writer, "# %s: %s\n", key, meta[key])
	}

	fmt.Fprintf(writer, "Obs\tCluster\n")
	for idx, c := range labels {
		fmt.Fprintf(writer, "%d\t%d\n", idx, c)
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	w.logger.Debug("Assignment written",
		zap.String("file", filename),
		zap.Int("observations", nbObservations))

	return file.Close()
}
