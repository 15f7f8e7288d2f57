// Package notify implements the single-slot transient message display.
//
// At most one message is visible. Notify replaces the visible message and
// restarts the dismissal timer; nothing is queued.
package notify

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the notifier needs.
type Timer interface {
	Stop() bool
}

// Clock schedules f to run once after d.
type Clock func(d time.Duration, f func()) Timer

func systemClock(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Listener observes every change of the visible message. visible is false
// when the message was dismissed.
type Listener func(message string, visible bool)

type Notifier struct {
	lifetime time.Duration
	clock    Clock
	listener Listener

	mu      sync.Mutex
	message string
	visible bool
	timer   Timer
	gen     uint64
}

type Option func(*Notifier)

func WithClock(c Clock) Option {
	return func(n *Notifier) { n.clock = c }
}

func WithListener(l Listener) Option {
	return func(n *Notifier) { n.listener = l }
}

func New(lifetime time.Duration, opts ...Option) *Notifier {
	n := &Notifier{lifetime: lifetime, clock: systemClock}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Notify shows message, cancelling any pending dismissal.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.message = message
	n.visible = true
	n.timer = n.clock(n.lifetime, func() { n.dismiss(gen) })
	listener := n.listener
	n.mu.Unlock()

	if listener != nil {
		listener(message, true)
	}
}

// dismiss hides the message installed by generation gen. A timer that lost
// the race with a newer Notify finds a different generation and does nothing.
func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	if gen != n.gen || !n.visible {
		n.mu.Unlock()
		return
	}
	n.visible = false
	n.timer = nil
	message := n.message
	listener := n.listener
	n.mu.Unlock()

	if listener != nil {
		listener(message, false)
	}
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.visible {
		return "", false
	}
	return n.message, true
}

// Stop cancels the pending dismissal without hiding the message.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
}
