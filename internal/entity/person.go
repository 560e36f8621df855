package entity

import (
	"fmt"
	"strings"

	"oopclassroom/internal/messaging"

	"github.com/google/uuid"
)

// BirthdayCheer is announced on every birthday
const BirthdayCheer = "woohoo! free cake! party time!"

// Person is the base of the class hierarchy
type Person struct {
	id      string
	name    string
	age     int
	species string
	opts    options
}

// NewPerson creates a person; species is always Homo Sapiens
func NewPerson(name string, age int, opts ...Option) *Person {
	p := &Person{
		id:      uuid.New().String(),
		name:    name,
		age:     age,
		species: Species,
		opts:    buildOptions(opts),
	}
	p.opts.logger.Debug("person created", "entity_id", p.id, "name", name, "age", age)
	return p
}

func (p *Person) ID() string       { return p.id }
func (p *Person) Name() string     { return p.name }
func (p *Person) Age() int         { return p.age }
func (p *Person) Species() string  { return p.species }
func (p *Person) Type() EntityType { return EntityTypePerson }

// AsPerson returns the Person part of the receiver
func (p *Person) AsPerson() *Person { return p }

// FirstName returns the text before the first space of the name.
// A name without a space is returned whole; an empty name gives "".
func (p *Person) FirstName() string {
	first, _, _ := strings.Cut(p.name, " ")
	return first
}

// HaveBirthday increments the age and announces the party
func (p *Person) HaveBirthday() {
	p.age++
	p.opts.publish(messaging.NewNotification(p.id, messaging.KindBirthday, BirthdayCheer))
}

// Greet greets other by first name. other must not be nil.
func (p *Person) Greet(other FirstNamer) string {
	text := fmt.Sprintf("Hi %s, my name is %s", other.FirstName(), p.FirstName())
	p.opts.publish(messaging.NewNotification(p.id, messaging.KindGreeting, text))
	return text
}

func (p *Person) String() string {
	return fmt.Sprintf("Person{name: %q, age: %d, species: %q}", p.name, p.age, p.species)
}
