package configs

import (
	"go.uber.org/zap"
)

// InitLogger builds the process logger and installs it as the zap global.
// Development mode switches to the human-readable console encoder.
func InitLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if LoadENV.AppEnv == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
