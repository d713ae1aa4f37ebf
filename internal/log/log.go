// Package log provides the logger used for structural graph events.
package log

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug logging when it parses as true.
const DebugEnv = "ALGO_DSPGRAPH_DEBUG"

var debug bool

func init() {
	debug = enabled(os.Getenv(DebugEnv))
}

func enabled(value string) bool {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return on
}

// GetLogger returns a new logger instance.
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
