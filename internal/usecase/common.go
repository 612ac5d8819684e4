package usecase

import (
	"time"

	"go.uber.org/zap"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

func componentLogger(logger *zap.Logger, component string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.String("component", component))
}
