package infrastructure

import (
	"kmeans-problem/internal/domain"
	"os"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// defaultDecimals действует, только если ключ decimals отсутствует
const defaultDecimals = 6

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

// ReadConfig читает YAML-конфигурацию. Пустой путь даёт конфигурацию
// по умолчанию.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	config := domain.Config{Decimals: defaultDecimals}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
		r.logger.Debug("Config loaded", zap.String("file", path))
	}

	// Устанавливаем значения по умолчанию
	SetDefaults(&config)

	return &config, nil
}

// SetDefaults заполняет незаданные поля.
func SetDefaults(config *domain.Config) {
	if config.K == 0 {
		config.K = domain.DefaultK
	}
	if config.NSamples == 0 {
		config.NSamples = 100
	}
	if config.NBest == 0 {
		config.NBest = 10
	}
	if config.Workers == 0 {
		config.Workers = max(1, runtime.NumCPU()-1)
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
