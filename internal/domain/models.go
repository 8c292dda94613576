package domain

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DefaultK число кластеров по умолчанию
const DefaultK = 2

// Unassigned отмечает наблюдение, не попавшее ни в один кластер
const Unassigned = -1

// Config представляет конфигурацию приложения
type Config struct {
	InstanceFile string `yaml:"instance_file"`
	BaseDir      string `yaml:"base_dir"`
	K            int    `yaml:"k"`
	NSamples     int    `yaml:"nsamples"`
	NBest        int    `yaml:"nbest"`
	Workers      int    `yaml:"workers"`
	Seed         int64  `yaml:"seed"`
	Strict       bool   `yaml:"strict"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	OutputFile   string `yaml:"output_file"`
	Decimals     int    `yaml:"decimals"`
}

// Dataset представляет загруженные наблюдения.
// Строка i матрицы Coordinates - координаты наблюдения i.
type Dataset struct {
	NbObservations int
	NbDimensions   int
	Coordinates    *mat.Dense
}

// NewDataset builds a dataset from row-major coordinates.
func NewDataset(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidFileFormat
	}

	n, d := len(rows), len(rows[0])
	data := make([]float64, 0, n*d)
	for _, row := range rows {
		if len(row) != d {
			return nil, ErrInvalidFileFormat
		}
		data = append(data, row...)
	}

	return &Dataset{
		NbObservations: n,
		NbDimensions:   d,
		Coordinates:    mat.NewDense(n, d, data),
	}, nil
}

// Observation returns the coordinates of observation i without copying.
// The returned slice must not be modified.
func (d *Dataset) Observation(i int) []float64 {
	return d.Coordinates.RawRowView(i)
}

// Cluster набор индексов наблюдений
type Cluster []int

// Solution разбиение наблюдений на кластеры
type Solution []Cluster

// Candidate решение вместе с его оценкой
type Candidate struct {
	Solution Solution
	Score    float64
}

var (
	ErrInvalidFileFormat   = errors.New("invalid file format")
	ErrIndexOutOfRange     = errors.New("observation index out of range")
	ErrInvalidClusterCount = errors.New("cluster count must be positive")
	ErrClusterCount        = errors.New("solution cluster count mismatch")
	ErrDuplicateIndex      = errors.New("observation assigned more than once")
)
