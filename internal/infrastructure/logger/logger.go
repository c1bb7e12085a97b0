package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. LOG_LEVEL=debug switches to the development
// config; anything else gets production JSON output.
func New() (*zap.Logger, error) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
