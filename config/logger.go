package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 20
	logMaxBackups = 3
	logMaxAgeDays = 7
)

// NewLogger builds the logger for a run. With a log file, entries go to a
// rotating file. Otherwise plain mode logs to stderr and the interactive
// dashboard discards logs so they can't tear the frame.
func NewLogger(logFile, level string, plain bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	switch {
	case logFile != "":
		logger.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		})
		logger.SetFormatter(&logrus.JSONFormatter{})
	case plain:
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetOutput(io.Discard)
	}
	return logger, nil
}
