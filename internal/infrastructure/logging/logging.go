package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// New builds the root logger. Unknown levels fall back to info.
func New(level, format string, out io.Writer) *log.Logger {
	logger := log.New()
	if out == nil {
		out = os.Stdout
	}
	logger.SetOutput(out)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	return logger
}
