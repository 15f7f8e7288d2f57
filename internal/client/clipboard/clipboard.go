// Package clipboard is the copy target for shared links.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard. It needs xclip, xsel or wl-copy on
// Linux; without them WriteAll fails.
type System struct{}

func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether the OS clipboard can be used on this host.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory keeps the last written text. Safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// New picks System when requested and available, Memory otherwise.
func New(useSystem bool) Writer {
	if useSystem && Available() {
		return System{}
	}
	return &Memory{}
}
