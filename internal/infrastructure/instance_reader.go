package infrastructure

import (
	"bufio"
	"fmt"
	"io"
	"kmeans-problem/internal/domain"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

const maxLineSize = 16 * 1024 * 1024

type TXTInstanceReader struct {
	logger  *zap.Logger
	baseDir string
}

// NewTXTInstanceReader создаёт читатель; относительные пути
// разрешаются от baseDir (пустой baseDir - текущий каталог).
func NewTXTInstanceReader(logger *zap.Logger, baseDir string) *TXTInstanceReader {
	return &TXTInstanceReader{logger: logger, baseDir: baseDir}
}

// Resolve returns the path the reader opens for filename.
func (r *TXTInstanceReader) Resolve(filename string) string {
	if filepath.IsAbs(filename) || r.baseDir == "" {
		return filename
	}
	return filepath.Join(r.baseDir, filename)
}

func (r *TXTInstanceReader) ReadInstance(filename string) (*domain.Dataset, error) {
	path := r.Resolve(filename)

	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	// Пропускаем пустые строки, запоминая номера исходных строк
	var content []numberedLine
	for _, l := range lines {
		if len(strings.Fields(l.text)) > 0 {
			content = append(content, l)
		}
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidFileFormat, path)
	}

	// Первая строка: число наблюдений и число измерений
	header := strings.Fields(content[0].text)
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: line %d: header needs observation and dimension counts",
			domain.ErrInvalidFileFormat, content[0].number)
	}
	nbObservations, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", content[0].number, err)
	}
	nbDimensions, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", content[0].number, err)
	}
	if nbObservations < 1 || nbDimensions < 1 {
		return nil, fmt.Errorf("%w: line %d: counts must be positive, got %d %d",
			domain.ErrInvalidFileFormat, content[0].number, nbObservations, nbDimensions)
	}

	if len(content)-1 < nbObservations {
		return nil, fmt.Errorf("%w: declared %d observations, found %d",
			domain.ErrInvalidFileFormat, nbObservations, len(content)-1)
	}

	data := make([][]float64, nbObservations)
	for i := range nbObservations {
		line := content[i+1]
		fields := strings.Fields(line.text)
		if len(fields) < nbDimensions {
			return nil, fmt.Errorf("%w: line %d: want %d coordinates, got %d",
				domain.ErrInvalidFileFormat, line.number, nbDimensions, len(fields))
		}

		// Первые nbDimensions значений - координаты, метка игнорируется
		row := make([]float64, nbDimensions)
		for j := range nbDimensions {
			value, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line.number, err)
			}
			row[j] = value
		}
		data[i] = row
	}

	dataset, err := domain.NewDataset(data)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Instance loaded",
		zap.String("file", path),
		zap.Int("observations", dataset.NbObservations),
		zap.Int("dimensions", dataset.NbDimensions))

	return dataset, nil
}

type numberedLine struct {
	number int
	text   string
}

func readLines(path string) ([]numberedLine, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	src, closeSrc, err := decompress(path, file)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	var lines []numberedLine
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		lines = append(lines, numberedLine{number: n, text: scanner.Text()})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// decompress выбирает распаковщик по расширению файла.
func decompress(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { zr.Close() }, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
