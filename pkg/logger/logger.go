package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. Development mode (console encoder,
// debug level) is selected with APP_ENV=dev; anything else gets the
// production JSON config.
func New() (*zap.Logger, error) {
	var log *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "dev" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
