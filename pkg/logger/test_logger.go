package logger

import (
	"sync"

	"github.com/rs/zerolog"
)

// LogMessage represents a captured log message
type LogMessage struct {
	Level   string
	Message string
	Fields  map[string]interface{}
	Error   error
}

// TestLogger is a logger implementation for testing that captures all log messages
type TestLogger struct {
	*scope
}

// capture is shared by a TestLogger and every logger derived from it
type capture struct {
	mu       sync.Mutex
	messages []LogMessage
}

// scope is one view onto a capture with its own fields and error
type scope struct {
	store  *capture
	fields map[string]interface{}
	err    error
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{scope: &scope{store: &capture{}}}
}

func (s *scope) log(level, msg string, extra map[string]interface{}) {
	fields := make(map[string]interface{}, len(s.fields)+len(extra))
	for k, v := range s.fields {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.messages = append(s.store.messages, LogMessage{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   s.err,
	})
}

func (s *scope) derive(fields map[string]interface{}, err error) *scope {
	merged := make(map[string]interface{}, len(s.fields)+len(fields))
	for k, v := range s.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &scope{store: s.store, fields: merged, err: err}
}

func (s *scope) Debug(msg string) { s.log("DEBUG", msg, nil) }
func (s *scope) Info(msg string)  { s.log("INFO", msg, nil) }
func (s *scope) Warn(msg string)  { s.log("WARN", msg, nil) }
func (s *scope) Error(msg string) { s.log("ERROR", msg, nil) }

func (s *scope) DebugWithFields(msg string, fields map[string]interface{}) {
	s.log("DEBUG", msg, fields)
}

func (s *scope) InfoWithFields(msg string, fields map[string]interface{}) {
	s.log("INFO", msg, fields)
}

func (s *scope) WarnWithFields(msg string, fields map[string]interface{}) {
	s.log("WARN", msg, fields)
}

func (s *scope) ErrorWithFields(msg string, fields map[string]interface{}) {
	s.log("ERROR", msg, fields)
}

func (s *scope) WithField(key string, value interface{}) Logger {
	return s.derive(map[string]interface{}{key: value}, s.err)
}

func (s *scope) WithFields(fields map[string]interface{}) Logger {
	return s.derive(fields, s.err)
}

func (s *scope) WithError(err error) Logger {
	return s.derive(nil, err)
}

func (s *scope) GetZerolog() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}

// GetMessages returns all captured log messages
func (l *TestLogger) GetMessages() []LogMessage {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	messages := make([]LogMessage, len(l.store.messages))
	copy(messages, l.store.messages)
	return messages
}

// GetMessagesByLevel returns all messages of a specific level
func (l *TestLogger) GetMessagesByLevel(level string) []LogMessage {
	var filtered []LogMessage
	for _, msg := range l.GetMessages() {
		if msg.Level == level {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}

// HasMessage checks if a message with the given text was logged
func (l *TestLogger) HasMessage(text string) bool {
	for _, msg := range l.GetMessages() {
		if msg.Message == text {
			return true
		}
	}
	return false
}

// HasError checks if an error was logged
func (l *TestLogger) HasError() bool {
	return len(l.GetMessagesByLevel("ERROR")) > 0
}

// Clear clears all captured messages
func (l *TestLogger) Clear() {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.messages = l.store.messages[:0]
}
