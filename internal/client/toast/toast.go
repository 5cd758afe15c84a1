// Package toast implements the notification relay used by stores and the
// request pipeline to surface outcomes to the user. Callers fire and
// forget; dismissal is handled internally.
package toast

import (
	"sync"
	"time"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Default auto-dismiss durations per severity. Errors linger longer so the
// user has time to read them.
const (
	successDuration = 3 * time.Second
	errorDuration   = 5 * time.Second
	warningDuration = 4 * time.Second
	infoDuration    = 3 * time.Second
)

// Message is one displayed notification.
type Message struct {
	Text     string
	Severity Severity
	Duration time.Duration
}

// Sink receives messages for display. The CLI uses a writer-backed sink;
// tests use a recorder.
type Sink interface {
	Show(m Message)
}

// Notifier tracks the set of currently visible messages and forwards each
// one to the sink. It is safe for concurrent use.
type Notifier struct {
	mu     sync.Mutex
	active []Message
	sink   Sink

	// afterFunc is a test seam for time.AfterFunc.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewNotifier constructs a Notifier writing to sink.
func NewNotifier(sink Sink) *Notifier {
	return &Notifier{sink: sink, afterFunc: time.AfterFunc}
}

// Success displays a success notification.
func (n *Notifier) Success(text string) { n.show(text, SeveritySuccess, successDuration) }

// Error displays an error notification.
func (n *Notifier) Error(text string) { n.show(text, SeverityError, errorDuration) }

// Warning displays a warning notification.
func (n *Notifier) Warning(text string) { n.show(text, SeverityWarning, warningDuration) }

// Info displays an info notification.
func (n *Notifier) Info(text string) { n.show(text, SeverityInfo, infoDuration) }

// Active returns a snapshot of the currently visible messages.
func (n *Notifier) Active() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Message, len(n.active))
	copy(out, n.active)
	return out
}

// Dismiss removes the first visible message with the given text.
func (n *Notifier) Dismiss(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, m := range n.active {
		if m.Text == text {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}

func (n *Notifier) show(text string, severity Severity, duration time.Duration) {
	m := Message{Text: text, Severity: severity, Duration: duration}

	n.mu.Lock()
	n.active = append(n.active, m)
	n.mu.Unlock()

	if n.sink != nil {
		n.sink.Show(m)
	}

	n.afterFunc(duration, func() { n.Dismiss(text) })
}
