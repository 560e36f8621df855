package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification
type Kind string

const (
	// KindGreeting is produced when one individual greets another
	KindGreeting Kind = "greeting"

	// KindBirthday is produced when an individual has a birthday
	KindBirthday Kind = "birthday"

	// KindState is a dump of an entity's state
	KindState Kind = "state"

	// KindAnnouncement is free text from the lesson itself
	KindAnnouncement Kind = "announcement"
)

// Notification is one line of text produced by an entity behavior
type Notification struct {
	ID        string // UUID for the notification
	SenderID  string // ID of the producing entity, empty for the lesson
	Kind      Kind
	Text      string
	Timestamp time.Time
}

// NewNotification creates a notification stamped with a fresh ID and the current time
func NewNotification(senderID string, kind Kind, text string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Kind:      kind,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAnnouncement creates a notification that has no sending entity
func NewAnnouncement(text string) Notification {
	return NewNotification("", KindAnnouncement, text)
}
