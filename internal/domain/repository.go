package domain

// InstanceReader интерфейс для чтения файла с наблюдениями
type InstanceReader interface {
	ReadInstance(filename string) (*Dataset, error)
}

// AssignmentReader интерфейс для чтения назначений кластеров
type AssignmentReader interface {
	ReadAssignment(filename string, k, nbObservations int) (Solution, error)
}

// AssignmentWriter интерфейс для записи результатов
type AssignmentWriter interface {
	WriteAssignment(filename string, candidate *Candidate, nbObservations int, meta map[string]string) error
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
