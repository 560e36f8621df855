package messaging

import (
	"fmt"
	"io"
	"sync"
)

// Notifier delivers notifications synchronously
type Notifier interface {
	Notify(n Notification) error
}

// WriterNotifier prints each notification's text as one line
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier printing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes the text followed by a newline
func (n *WriterNotifier) Notify(note Notification) error {
	if _, err := fmt.Fprintln(n.w, note.Text); err != nil {
		return fmt.Errorf("write %s notification: %w", note.Kind, err)
	}
	return nil
}

// MemoryNotifier keeps every notification it receives, in order
type MemoryNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

// NewMemoryNotifier creates an empty recording notifier
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// Notify records the notification
func (m *MemoryNotifier) Notify(note Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notes = append(m.notes, note)
	return nil
}

// Notifications returns a copy of the recorded notifications
func (m *MemoryNotifier) Notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Notification, len(m.notes))
	copy(out, m.notes)
	return out
}

// Texts returns the recorded texts, optionally restricted to the given kinds
func (m *MemoryNotifier) Texts(kinds ...Kind) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var texts []string
	for _, note := range m.notes {
		if len(kinds) > 0 && !containsKind(kinds, note.Kind) {
			continue
		}
		texts = append(texts, note.Text)
	}
	return texts
}

// Reset drops everything recorded so far
func (m *MemoryNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notes = nil
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, candidate := range kinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// MultiNotifier delivers to every notifier in order. All notifiers are tried;
// the first error is returned.
type MultiNotifier []Notifier

// Notify fans the notification out
func (m MultiNotifier) Notify(note Notification) error {
	var first error
	for _, n := range m {
		if err := n.Notify(note); err != nil && first == nil {
			first = err
		}
	}
	return first
}
