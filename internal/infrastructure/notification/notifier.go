// Package notification carries the user-facing notice stream. Workflows
// report outcomes here instead of shaping HTTP responses themselves.
package notification

import (
	"log"
	"sync"

	"flota_ot/internal/usecase/interfaces"
)

// LogNotifier writes notices to the service log. Used when no UI channel is
// attached.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) Info(message string)    { log.Printf("[notify][info] %s", message) }
func (LogNotifier) Success(message string) { log.Printf("[notify][success] %s", message) }
func (LogNotifier) Error(message string)   { log.Printf("[notify][error] %s", message) }

// Notice is one recorded notification.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Recorder accumulates notices so callers (tests, the HTTP facade) can
// observe what a workflow reported.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

var _ interfaces.INotifier = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Info(message string)    { r.append("info", message) }
func (r *Recorder) Success(message string) { r.append("success", message) }
func (r *Recorder) Error(message string)   { r.append("error", message) }

func (r *Recorder) append(level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: level, Message: message})
}

// Drain returns the recorded notices and resets the recorder.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}
