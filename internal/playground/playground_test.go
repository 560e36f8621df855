package playground

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"oopclassroom/internal/entity"
	"oopclassroom/internal/logging"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.Init(logging.DevNull())
	m.Run()
}

// scriptedChooser answers prompts from a fixed list, then reports EOF
type scriptedChooser struct {
	answers []int
	labels  []string
	err     error
}

func (s *scriptedChooser) Choose(label string, items []string) (int, error) {
	s.labels = append(s.labels, label)
	if len(s.answers) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.EOF
	}
	idx := s.answers[0]
	s.answers = s.answers[1:]
	return idx, nil
}

const (
	henry = iota
	pete
	weston
	joe
)

func indexOf(action Action) int {
	for i, a := range Actions {
		if a == action {
			return i
		}
	}
	return -1
}

func TestPlaygroundSession(t *testing.T) {
	chooser := &scriptedChooser{answers: []int{
		indexOf(ActionGreet), joe, henry,
		indexOf(ActionBirthday), henry,
		indexOf(ActionOpenFridge),
		indexOf(ActionQuit),
	}}
	out := &bytes.Buffer{}
	pg := New(chooser, out)

	require.NoError(t, pg.Run(context.Background()))

	expected := []string{
		"Welcome to the OOP playground!",
		"Hi henry! My name is Joe. OH BY THE WAY DID I MENTION I WENT TO Harvard?!?!?",
		entity.BirthdayCheer,
		"henry is now 26",
		"{ color: 'white', weight: 800, doorIsOpen: true }",
		"Goodbye!",
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, expected, lines)

	assert.Equal(t, 26, pg.Roster().Henry.Age())
	assert.True(t, pg.Roster().Fridge.DoorIsOpen)
	assert.Equal(t, "Who is speaking?", chooser.labels[1])
}

func TestPlaygroundPlainPersonGreets(t *testing.T) {
	chooser := &scriptedChooser{answers: []int{indexOf(ActionGreet), pete, weston}}
	out := &bytes.Buffer{}

	require.NoError(t, New(chooser, out).Run(context.Background()))
	assert.Contains(t, out.String(), "Hi weston, my name is pete\n")
}

func TestPlaygroundShowEveryone(t *testing.T) {
	out := &bytes.Buffer{}
	pg := New(&scriptedChooser{}, out)

	require.NoError(t, pg.Do(ActionShowPeople))
	assert.Equal(t, strings.Join([]string{
		`Person{name: "henry hong", age: 25, species: "Homo Sapiens"}`,
		`Person{name: "pete masalusa", age: 80, species: "Homo Sapiens"}`,
		`Person{name: "weston B", age: 80, species: "Homo Sapiens"}`,
		`Lawyer{name: "Joe Lawyerguy", age: 50, species: "Homo Sapiens", graduatedFrom: "Harvard"}`,
	}, "\n")+"\n", out.String())
}

func TestPlaygroundFridgeActions(t *testing.T) {
	out := &bytes.Buffer{}
	pg := New(&scriptedChooser{}, out)

	require.NoError(t, pg.Do(ActionOpenFridge))
	require.NoError(t, pg.Do(ActionCloseFridge))
	require.NoError(t, pg.Do(ActionShowFridge))

	assert.Equal(t,
		"{ color: 'white', weight: 800, doorIsOpen: true }\n"+
			"{ color: 'white', weight: 800, doorIsOpen: false }\n"+
			"{ color: 'white', weight: 800, doorIsOpen: false }\n",
		out.String())
}

func TestPlaygroundUnknownAction(t *testing.T) {
	pg := New(&scriptedChooser{}, &bytes.Buffer{})
	assert.Error(t, pg.Do(Action("sue someone")))
}

func TestPlaygroundExitsOnInterrupt(t *testing.T) {
	chooser := &scriptedChooser{answers: []int{indexOf(ActionBirthday)}, err: promptui.ErrInterrupt}
	out := &bytes.Buffer{}

	require.NoError(t, New(chooser, out).Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
}

func TestPlaygroundReportsChooserFailure(t *testing.T) {
	chooser := &scriptedChooser{err: errors.New("terminal gone")}

	err := New(chooser, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal gone")
}

func TestPlaygroundStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(&scriptedChooser{}, &bytes.Buffer{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPromptChooserWrapsStreams(t *testing.T) {
	c := NewPromptChooserWithIO(strings.NewReader(""), &bytes.Buffer{})
	assert.NoError(t, c.in.Close())
	assert.NoError(t, c.out.Close())
	assert.Equal(t, 8, c.size)

	var _ Chooser = NewPromptChooser()
}
