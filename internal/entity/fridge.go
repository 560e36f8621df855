package entity

import (
	"fmt"

	"oopclassroom/internal/messaging"

	"github.com/google/uuid"
)

// Fridge is a plain mutable record with two behaviors
type Fridge struct {
	Color      string
	Weight     int
	DoorIsOpen bool

	id   string
	opts options
}

// NewFridge creates a fridge with its door closed
func NewFridge(color string, weight int, opts ...Option) *Fridge {
	return &Fridge{
		Color:  color,
		Weight: weight,
		id:     uuid.New().String(),
		opts:   buildOptions(opts),
	}
}

func (f *Fridge) ID() string       { return f.id }
func (f *Fridge) Type() EntityType { return EntityTypeAppliance }

// OpenDoor opens the door; calling it again changes nothing
func (f *Fridge) OpenDoor() {
	f.DoorIsOpen = true
}

// CloseDoor closes the door; calling it again changes nothing
func (f *Fridge) CloseDoor() {
	f.DoorIsOpen = false
}

// Dump announces the current state and returns it
func (f *Fridge) Dump() string {
	text := f.String()
	f.opts.publish(messaging.NewNotification(f.id, messaging.KindState, text))
	return text
}

func (f *Fridge) String() string {
	return fmt.Sprintf("{ color: '%s', weight: %d, doorIsOpen: %t }", f.Color, f.Weight, f.DoorIsOpen)
}
