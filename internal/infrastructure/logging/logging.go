// Package logging wraps logrus for the HTTP adapter's request logger and
// for usecase.Service's NoLogicalProgress diagnostics hook (which logs
// through whatever *logrus.Logger this package builds, with fields
// technique/step/duration), the way vancomm-minesweeper-server wires a
// package-level *logrus.Logger through its solver.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a *logrus.Logger writing text-formatted entries to stdout at
// the given level (debug|info|warn|error; anything else falls back to info).
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(parseLevel(level))
	return log
}

func parseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
