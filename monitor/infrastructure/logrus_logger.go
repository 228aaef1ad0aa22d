package infrastructure

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus logger to the domain Logger contract.
type LogrusLogger struct {
	log *logrus.Logger
}

// Info logs an informational message with optional formatted arguments.
func (l *LogrusLogger) Info(msg string, args ...interface{}) {
	l.log.Infof(msg, args...)
}

// Error logs an error message with optional formatted arguments.
func (l *LogrusLogger) Error(msg string, args ...interface{}) {
	l.log.Errorf(msg, args...)
}

// NewLogrusLogger creates a logger writing text records with full timestamps to stderr.
func NewLogrusLogger() *LogrusLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &LogrusLogger{log: log}
}
