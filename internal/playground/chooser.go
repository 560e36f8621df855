package playground

import (
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// Chooser asks the user to pick one of items and returns its index
type Chooser interface {
	Choose(label string, items []string) (int, error)
}

// nopCloser adapts an io.Reader to the io.ReadCloser promptui expects
type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

// nopWriteCloser adapts an io.Writer to the io.WriteCloser promptui expects
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// PromptChooser is the interactive Chooser backed by promptui
type PromptChooser struct {
	in   io.ReadCloser
	out  io.WriteCloser
	size int
}

// NewPromptChooser creates a chooser on the terminal
func NewPromptChooser() *PromptChooser {
	return NewPromptChooserWithIO(os.Stdin, os.Stdout)
}

// NewPromptChooserWithIO creates a chooser on custom streams
func NewPromptChooserWithIO(in io.Reader, out io.Writer) *PromptChooser {
	return &PromptChooser{
		in:   nopCloser{in},
		out:  nopWriteCloser{out},
		size: 8,
	}
}

// Choose shows a select list and waits for the user
func (c *PromptChooser) Choose(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label:        label,
		Items:        items,
		Size:         c.size,
		HideSelected: true,
		Stdin:        c.in,
		Stdout:       c.out,
	}
	idx, _, err := sel.Run()
	return idx, err
}
