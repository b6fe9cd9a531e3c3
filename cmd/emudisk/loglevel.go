package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type logLevelFlag struct {
	Level logrus.Level
}

var _ pflag.Value = (*logLevelFlag)(nil)

// Type implements pflag.Value.
func (lvl *logLevelFlag) Type() string { return "loglevel" }

// Set implements pflag.Value.
func (lvl *logLevelFlag) Set(str string) error {
	switch strings.ToLower(str) {
	case "error":
		lvl.Level = logrus.ErrorLevel
	case "warn", "warning":
		lvl.Level = logrus.WarnLevel
	case "info":
		lvl.Level = logrus.InfoLevel
	case "debug":
		lvl.Level = logrus.DebugLevel
	case "trace":
		lvl.Level = logrus.TraceLevel
	default:
		return fmt.Errorf("invalid log level: %q", str)
	}
	return nil
}

// String implements pflag.Value.
func (lvl *logLevelFlag) String() string {
	switch lvl.Level {
	case logrus.ErrorLevel:
		return "error"
	case logrus.WarnLevel:
		return "warn"
	case logrus.InfoLevel:
		return "info"
	case logrus.DebugLevel:
		return "debug"
	case logrus.TraceLevel:
		return "trace"
	default:
		return lvl.Level.String()
	}
}
