package obs

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerOnce sync.Once
	logger     *zap.Logger
)

// Logger returns the shared structured logger used across the service.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l.Named("maricoleta")
	})
	return logger
}

// Sync flushes buffered log entries, called on shutdown.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
