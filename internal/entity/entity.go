package entity

import (
	"os"

	"oopclassroom/internal/logging"
	"oopclassroom/internal/messaging"
)

// EntityType represents the kind of an entity in the lesson
type EntityType string

const (
	// EntityTypePerson represents a plain person
	EntityTypePerson EntityType = "person"

	// EntityTypeLawyer represents a person who graduated from law school
	EntityTypeLawyer EntityType = "lawyer"

	// EntityTypeAppliance represents a household appliance record
	EntityTypeAppliance EntityType = "appliance"
)

// Species is fixed for every person at construction
const Species = "Homo Sapiens"

// Option configures an entity at construction
type Option func(*options)

type options struct {
	notifier messaging.Notifier
	logger   *logging.Logger
}

// WithNotifier routes the entity's notifications to n instead of stdout
func WithNotifier(n messaging.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = messaging.NewWriterNotifier(os.Stdout)
	}
	if o.logger == nil {
		o.logger = logging.Get()
	}
	return o
}

// publish delivers a notification; entity behaviors have no error result,
// so delivery failures are only logged.
func (o options) publish(note messaging.Notification) {
	if err := o.notifier.Notify(note); err != nil {
		o.logger.Warn("notification not delivered",
			"sender", note.SenderID,
			"kind", string(note.Kind),
			"error", err)
	}
}
