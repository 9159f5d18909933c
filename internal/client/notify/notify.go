// Package notify implements short-lived terminal notifications. Each
// notification is printed after a small delay and expires after a display
// window; concurrent notifications stack independently.
package notify

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

const (
	DefaultDelay    = 100 * time.Millisecond
	DefaultLifetime = 5 * time.Second
)

var icons = map[Severity]string{
	Success: "✔",
	Error:   "✖",
	Info:    "ℹ",
	Warning: "⚠",
}

// Notification is a message currently on screen.
type Notification struct {
	ID       uint64
	Message  string
	Severity Severity
	ShownAt  time.Time
}

type Option func(*Notifier)

// WithDelay sets how long a notification stays hidden after Show.
func WithDelay(d time.Duration) Option {
	return func(n *Notifier) { n.delay = d }
}

// WithLifetime sets how long a notification stays visible.
func WithLifetime(d time.Duration) Option {
	return func(n *Notifier) { n.lifetime = d }
}

type Notifier struct {
	mu       sync.Mutex
	out      io.Writer
	delay    time.Duration
	lifetime time.Duration
	seq      uint64
	closed   bool
	visible  map[uint64]Notification
	timers   map[uint64]*time.Timer
}

func New(out io.Writer, opts ...Option) *Notifier {
	n := &Notifier{
		out:      out,
		delay:    DefaultDelay,
		lifetime: DefaultLifetime,
		visible:  make(map[uint64]Notification),
		timers:   make(map[uint64]*time.Timer),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show schedules message for display and returns immediately.
func (n *Notifier) Show(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	n.seq++
	id := n.seq
	n.timers[id] = time.AfterFunc(n.delay, func() { n.reveal(id, message, severity) })
}

func (n *Notifier) reveal(id uint64, message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	n.visible[id] = Notification{ID: id, Message: message, Severity: severity, ShownAt: time.Now()}
	fmt.Fprintf(n.out, "%s %s\n", icon(severity), message)

	n.timers[id] = time.AfterFunc(n.lifetime, func() { n.dismiss(id) })
}

func (n *Notifier) dismiss(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.visible, id)
	delete(n.timers, id)
}

// Active returns the visible notifications, oldest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, 0, len(n.visible))
	for _, v := range n.visible {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close stops pending timers. Later calls to Show are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	clear(n.visible)
}

func icon(s Severity) string {
	if i, ok := icons[s]; ok {
		return i
	}
	return icons[Info]
}
