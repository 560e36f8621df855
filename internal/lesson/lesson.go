// Package lesson runs the object-oriented programming walkthrough: an object
// literal with behavior, a Person class, and a Lawyer that overrides Greet.
package lesson

import (
	"context"
	"fmt"
	"io"
	"strings"

	"oopclassroom/internal/entity"
	"oopclassroom/internal/logging"
	"oopclassroom/internal/messaging"
)

// Roster is the cast of the lesson
type Roster struct {
	Fridge    *entity.Fridge
	Henry     *entity.Person
	Pete      *entity.Person
	Weston    *entity.Person
	LawyerGuy *entity.Lawyer

	byFirstName map[string]entity.Individual
	order       []string
}

// NewRoster creates the fridge and every person, all publishing to notifier
func NewRoster(notifier messaging.Notifier, logger *logging.Logger) *Roster {
	opts := []entity.Option{entity.WithNotifier(notifier), entity.WithLogger(logger)}

	r := &Roster{
		Fridge:      entity.NewFridge("white", 800, opts...),
		Henry:       entity.NewPerson("henry hong", 25, opts...),
		Pete:        entity.NewPerson("pete masalusa", 80, opts...),
		Weston:      entity.NewPerson("weston B", 80, opts...),
		LawyerGuy:   entity.NewLawyer("Joe Lawyerguy", 50, "Harvard", opts...),
		byFirstName: make(map[string]entity.Individual),
	}
	for _, ind := range []entity.Individual{r.Henry, r.Pete, r.Weston, r.LawyerGuy} {
		key := strings.ToLower(ind.FirstName())
		r.byFirstName[key] = ind
		r.order = append(r.order, key)
	}
	return r
}

// Individuals returns everyone in the order they were created
func (r *Roster) Individuals() []entity.Individual {
	out := make([]entity.Individual, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byFirstName[key])
	}
	return out
}

// Find looks an individual up by first name, ignoring case
func (r *Roster) Find(firstName string) (entity.Individual, bool) {
	ind, ok := r.byFirstName[strings.ToLower(firstName)]
	return ind, ok
}

// recorder remembers the first delivery error while forwarding everything
type recorder struct {
	next messaging.Notifier
	err  error
}

func (r *recorder) Notify(n messaging.Notification) error {
	err := r.next.Notify(n)
	if err != nil && r.err == nil {
		r.err = err
	}
	return err
}

// Run plays the lesson once, top to bottom, printing to out. Every
// notification is also delivered to the extra notifiers.
func Run(ctx context.Context, out io.Writer, extra ...messaging.Notifier) error {
	logger := logging.Get()
	targets := append(messaging.MultiNotifier{messaging.NewWriterNotifier(out)}, extra...)
	rec := &recorder{next: targets}

	steps := []struct {
		name string
		run  func(r *Roster)
	}{
		{"encapsulation", func(r *Roster) {
			r.Fridge.OpenDoor()
			r.Fridge.Dump()
		}},
		{"classes", func(r *Roster) {
			r.Pete.Greet(r.Henry)
			r.Henry.HaveBirthday()
		}},
		{"inheritance", func(r *Roster) {
			r.LawyerGuy.Greet(r.Weston)
			r.LawyerGuy.HaveBirthday()
		}},
		{"polymorphism", func(r *Roster) {
			for _, speaker := range []entity.Individual{r.Pete, r.LawyerGuy} {
				speaker.Greet(r.Henry)
			}
		}},
	}

	if err := rec.Notify(messaging.NewAnnouncement("hello!")); err != nil {
		return fmt.Errorf("lesson: %w", err)
	}

	roster := NewRoster(rec, logger)
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("lesson interrupted before %s: %w", step.name, err)
		}
		logger.Debug("lesson step", "step", step.name)
		step.run(roster)
		if rec.err != nil {
			return fmt.Errorf("lesson step %s: %w", step.name, rec.err)
		}
	}

	logger.Info("lesson finished",
		"henry_age", roster.Henry.Age(),
		"lawyer_age", roster.LawyerGuy.Age())
	return nil
}
