package paginationtest

import (
	"fmt"

	"github.com/discord-pagination/pagination-go/pagination"
)

type LogMessage struct {
	Level   pagination.LogLevel
	Message string
}

// NewLogger returns a logger sending every line to messages.
func NewLogger(messages chan<- LogMessage) pagination.Logger {
	return testLogger{messages: messages}
}

type testLogger struct {
	messages chan<- LogMessage
}

func (l testLogger) Print(level pagination.LogLevel, v ...interface{}) {
	l.messages <- LogMessage{
		Level:   level,
		Message: fmt.Sprint(v...),
	}
}

func (l testLogger) Printf(level pagination.LogLevel, format string, v ...interface{}) {
	l.messages <- LogMessage{
		Level:   level,
		Message: fmt.Sprintf(format, v...),
	}
}

var DiscardLogger pagination.Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Print(level pagination.LogLevel, v ...interface{}) {}

func (discardLogger) Printf(level pagination.LogLevel, format string, v ...interface{}) {}
