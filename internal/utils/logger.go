package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide structured logger.
var Logger zerolog.Logger

func init() {
	InitLogger()
}

// InitLogger configures console output; LOG_LEVEL=debug enables debug logs.
func InitLogger() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	Logger = zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	if os.Getenv("LOG_LEVEL") == "debug" {
		Logger = Logger.Level(zerolog.DebugLevel)
	}
}
