package diagnostics

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Severity classifies diagnostic messages.
type Severity uint8

// Severities, most severe first.
const (
	Error Severity = iota
	Warning
	Info
)

func (sev Severity) String() string {
	switch sev {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	}
	return fmt.Sprintf("severity(%d)", uint8(sev))
}

// Message is a single diagnostic.
type Message struct {
	Severity Severity
	Text     string
}

func (msg Message) String() string {
	return msg.Severity.String() + ": " + msg.Text
}

// Sink is a severity-bucketed message collector. The zero value is ready
// to use. A nil *Sink silently drops all messages, so parsers may be handed
// a nil sink.
type Sink struct {
	errors   []string
	warnings []string
	infos    []string
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// AddError records an error message.
func (s *Sink) AddError(msg string) {
	if s == nil {
		return
	}
	tracer().Errorf("%s", msg)
	s.errors = append(s.errors, msg)
}

// AddWarning records a warning message.
func (s *Sink) AddWarning(msg string) {
	if s == nil {
		return
	}
	tracer().Infof("warning: %s", msg)
	s.warnings = append(s.warnings, msg)
}

// AddInfo records an informational message.
func (s *Sink) AddInfo(msg string) {
	if s == nil {
		return
	}
	tracer().Debugf("%s", msg)
	s.infos = append(s.infos, msg)
}

// Add records a message with the given severity.
func (s *Sink) Add(sev Severity, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch sev {
	case Error:
		s.AddError(msg)
	case Warning:
		s.AddWarning(msg)
	default:
		s.AddInfo(msg)
	}
}

// Errors returns all error messages in the order they have been added.
func (s *Sink) Errors() []string {
	if s == nil {
		return nil
	}
	return s.errors
}

// Warnings returns all warning messages in the order they have been added.
func (s *Sink) Warnings() []string {
	if s == nil {
		return nil
	}
	return s.warnings
}

// Infos returns all informational messages in the order they have been added.
func (s *Sink) Infos() []string {
	if s == nil {
		return nil
	}
	return s.infos
}

// Len returns the total number of messages.
func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.errors) + len(s.warnings) + len(s.infos)
}

// HasErrors is true if at least one error has been recorded.
func (s *Sink) HasErrors() bool {
	return s != nil && len(s.errors) > 0
}

// Messages returns all messages, errors first, then warnings, then infos.
func (s *Sink) Messages() []Message {
	if s == nil {
		return nil
	}
	msgs := make([]Message, 0, s.Len())
	for _, m := range s.errors {
		msgs = append(msgs, Message{Error, m})
	}
	for _, m := range s.warnings {
		msgs = append(msgs, Message{Warning, m})
	}
	for _, m := range s.infos {
		msgs = append(msgs, Message{Info, m})
	}
	return msgs
}

// Err combines all recorded errors into a single error, or returns nil if
// there are none. Individual errors may be retrieved with multierr.Errors.
func (s *Sink) Err() error {
	if s == nil {
		return nil
	}
	var err error
	for _, m := range s.errors {
		err = multierr.Append(err, errors.New(m))
	}
	return err
}

// Reset drops all recorded messages.
func (s *Sink) Reset() {
	if s == nil {
		return
	}
	s.errors, s.warnings, s.infos = nil, nil, nil
}
