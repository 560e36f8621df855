package entity

import (
	"fmt"

	"oopclassroom/internal/messaging"
)

// Lawyer IS-A Person that also remembers where it graduated from
type Lawyer struct {
	*Person
	graduatedFrom string
}

// NewLawyer builds the Person part first, then records the university verbatim
func NewLawyer(name string, age int, university string, opts ...Option) *Lawyer {
	l := &Lawyer{
		Person:        NewPerson(name, age, opts...),
		graduatedFrom: university,
	}
	l.opts.logger.Debug("lawyer created", "entity_id", l.id, "graduated_from", university)
	return l
}

// GraduatedFrom returns the university given at construction
func (l *Lawyer) GraduatedFrom() string { return l.graduatedFrom }

func (l *Lawyer) Type() EntityType { return EntityTypeLawyer }

// Greet replaces Person.Greet entirely; the plain greeting is not produced.
func (l *Lawyer) Greet(other FirstNamer) string {
	text := fmt.Sprintf("Hi %s! My name is %s. OH BY THE WAY DID I MENTION I WENT TO %s?!?!?",
		other.FirstName(), l.FirstName(), l.graduatedFrom)
	l.opts.publish(messaging.NewNotification(l.id, messaging.KindGreeting, text))
	return text
}

func (l *Lawyer) String() string {
	return fmt.Sprintf("Lawyer{name: %q, age: %d, species: %q, graduatedFrom: %q}",
		l.name, l.age, l.species, l.graduatedFrom)
}
