package logging

import (
	"sync"
)

// DefaultLoggerFactory implements LoggerFactory using zap loggers
type DefaultLoggerFactory struct {
	loggers map[string]Logger
	mu      sync.RWMutex
}

// NewLoggerFactory creates a new logger factory
func NewLoggerFactory() LoggerFactory {
	return &DefaultLoggerFactory{
		loggers: make(map[string]Logger),
	}
}

// CreateLogger creates a basic logger for the specified component
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	logger := NewZapLogger(component)
	f.loggers[component] = logger
	return logger
}

// CreateCommandLogger creates a logger for CLI command execution
func (f *DefaultLoggerFactory) CreateCommandLogger(command string) Logger {
	return f.CreateLogger("command").WithContext(map[string]interface{}{
		"command": command,
	})
}

// CreateCatalogLogger creates a logger for catalog API operations
func (f *DefaultLoggerFactory) CreateCatalogLogger() Logger {
	return f.CreateLogger("catalog")
}

// CreateStoreLogger creates a logger for the flat-file store
func (f *DefaultLoggerFactory) CreateStoreLogger(dataDir string) Logger {
	return f.CreateLogger("store").WithContext(map[string]interface{}{
		"data_dir": dataDir,
	})
}

// CreateStatsLogger creates a logger for statistics queries
func (f *DefaultLoggerFactory) CreateStatsLogger() Logger {
	return f.CreateLogger("stats")
}

// GlobalLoggerFactory provides a singleton logger factory instance
var (
	globalFactory LoggerFactory
	factoryOnce   sync.Once
)

// GetGlobalLoggerFactory returns the global logger factory instance
func GetGlobalLoggerFactory() LoggerFactory {
	factoryOnce.Do(func() {
		globalFactory = NewLoggerFactory()
	})
	return globalFactory
}

// SetGlobalLoggerFactory sets the global logger factory (useful for dependency injection)
func SetGlobalLoggerFactory(factory LoggerFactory) {
	globalFactory = factory
}
