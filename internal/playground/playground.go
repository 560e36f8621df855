// Package playground lets a user drive the lesson's cast interactively.
package playground

import (
	"context"
	"errors"
	"fmt"
	"io"

	"oopclassroom/internal/entity"
	"oopclassroom/internal/lesson"
	"oopclassroom/internal/logging"
	"oopclassroom/internal/messaging"

	"github.com/manifoldco/promptui"
)

// Action is one entry of the main menu
type Action string

const (
	ActionGreet       Action = "greet someone"
	ActionBirthday    Action = "have a birthday"
	ActionOpenFridge  Action = "open the fridge door"
	ActionCloseFridge Action = "close the fridge door"
	ActionShowFridge  Action = "show the fridge"
	ActionShowPeople  Action = "show everyone"
	ActionQuit        Action = "quit"
)

// Actions lists the menu in display order
var Actions = []Action{
	ActionGreet,
	ActionBirthday,
	ActionOpenFridge,
	ActionCloseFridge,
	ActionShowFridge,
	ActionShowPeople,
	ActionQuit,
}

// Playground runs the interactive loop
type Playground struct {
	roster  *lesson.Roster
	chooser Chooser
	out     io.Writer
	logger  *logging.Logger
}

// New creates a playground printing to out and asking through chooser
func New(chooser Chooser, out io.Writer) *Playground {
	logger := logging.Get()
	return &Playground{
		roster:  lesson.NewRoster(messaging.NewWriterNotifier(out), logger),
		chooser: chooser,
		out:     out,
		logger:  logger,
	}
}

// Roster exposes the cast being played with
func (p *Playground) Roster() *lesson.Roster {
	return p.roster
}

// isExit reports whether err means the user left rather than something failed
func isExit(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, promptui.ErrInterrupt)
}

// Run loops until the user quits, closes input, or ctx is done
func (p *Playground) Run(ctx context.Context) error {
	fmt.Fprintln(p.out, "Welcome to the OOP playground!")
	defer fmt.Fprintln(p.out, "Goodbye!")

	labels := make([]string, len(Actions))
	for i, a := range Actions {
		labels[i] = string(a)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idx, err := p.chooser.Choose("What next?", labels)
		if err != nil {
			if isExit(err) {
				return nil
			}
			return fmt.Errorf("choose action: %w", err)
		}

		action := Actions[idx]
		if action == ActionQuit {
			return nil
		}

		p.logger.Debug("playground action", "action", string(action))
		if err := p.Do(action); err != nil {
			if isExit(err) {
				return nil
			}
			return err
		}
	}
}

// Do performs a single action, asking for whoever it needs
func (p *Playground) Do(action Action) error {
	switch action {
	case ActionGreet:
		speaker, err := p.pickIndividual("Who is speaking?")
		if err != nil {
			return err
		}
		listener, err := p.pickIndividual("Who are they greeting?")
		if err != nil {
			return err
		}
		speaker.Greet(listener)

	case ActionBirthday:
		who, err := p.pickIndividual("Whose birthday is it?")
		if err != nil {
			return err
		}
		who.HaveBirthday()
		fmt.Fprintf(p.out, "%s is now %d\n", who.FirstName(), who.Age())

	case ActionOpenFridge:
		p.roster.Fridge.OpenDoor()
		p.roster.Fridge.Dump()

	case ActionCloseFridge:
		p.roster.Fridge.CloseDoor()
		p.roster.Fridge.Dump()

	case ActionShowFridge:
		p.roster.Fridge.Dump()

	case ActionShowPeople:
		for _, ind := range p.roster.Individuals() {
			fmt.Fprintln(p.out, ind.String())
		}

	case ActionQuit:
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func (p *Playground) pickIndividual(label string) (entity.Individual, error) {
	cast := p.roster.Individuals()
	items := make([]string, len(cast))
	for i, ind := range cast {
		items[i] = ind.Name()
	}

	idx, err := p.chooser.Choose(label, items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return cast[idx], nil
}
