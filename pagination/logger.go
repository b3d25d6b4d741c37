package pagination

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type LogLevel uint

const (
	LogNone LogLevel = iota
	LogError
	LogWarning
	LogInfo
	LogVerbose
	LogDebug
)

var logLevelNames = map[LogLevel]string{
	LogNone:    "none",
	LogError:   "error",
	LogWarning: "warning",
	LogInfo:    "info",
	LogVerbose: "verbose",
	LogDebug:   "debug",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", uint(l))
}

// ParseLogLevel maps a level name such as "warning" to a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	for level, n := range logLevelNames {
		if n == name {
			return level, nil
		}
	}
	if name == "warn" {
		return LogWarning, nil
	}
	return LogNone, fmt.Errorf("unknown log level %q", name)
}

type LoggerOptions struct {
	Logger Logger
	Level  LogLevel
}

func (l LoggerOptions) Is(level LogLevel) bool {
	return l.Level != LogNone && l.Level >= level
}

func (l LoggerOptions) Print(level LogLevel, v ...interface{}) {
	if l.Is(level) {
		l.Logger.Print(level, v...)
	}
}

func (l LoggerOptions) Printf(level LogLevel, format string, v ...interface{}) {
	if l.Is(level) {
		l.Logger.Printf(level, format, v...)
	}
}

// Logger is an interface for pagination loggers.
type Logger interface {
	Print(level LogLevel, v ...interface{})
	Printf(level LogLevel, format string, v ...interface{})
}

// NewLogrusLogger adapts a logrus logger. Verbose maps to logrus' debug
// level and Debug to trace.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return &logrusLogger{Logger: l}
}

type logrusLogger struct {
	*logrus.Logger
}

var logrusLevels = map[LogLevel]logrus.Level{
	LogError:   logrus.ErrorLevel,
	LogWarning: logrus.WarnLevel,
	LogInfo:    logrus.InfoLevel,
	LogVerbose: logrus.DebugLevel,
	LogDebug:   logrus.TraceLevel,
}

func (l *logrusLogger) Print(level LogLevel, v ...interface{}) {
	if lvl, ok := logrusLevels[level]; ok {
		l.Logger.Log(lvl, v...)
	}
}

func (l *logrusLogger) Printf(level LogLevel, format string, v ...interface{}) {
	if lvl, ok := logrusLevels[level]; ok {
		l.Logger.Logf(lvl, format, v...)
	}
}

// logger is the internal logger type, with helper methods that wrap the raw
// Logger interface. Every line is prefixed with the session it belongs to.
type logger struct {
	l      LoggerOptions
	prefix string
}

func (l logger) sprintf(format string) string {
	return l.prefix + format
}

func (l logger) Errorf(format string, v ...interface{}) {
	l.l.Printf(LogError, l.sprintf(format), v...)
}

func (l logger) Warnf(format string, v ...interface{}) {
	l.l.Printf(LogWarning, l.sprintf(format), v...)
}

func (l logger) Infof(format string, v ...interface{}) {
	l.l.Printf(LogInfo, l.sprintf(format), v...)
}

func (l logger) Verbosef(format string, v ...interface{}) {
	l.l.Printf(LogVerbose, l.sprintf(format), v...)
}

func (l logger) Debugf(format string, v ...interface{}) {
	l.l.Printf(LogDebug, l.sprintf(format), v...)
}
