// Package form holds the name entry screen's editing state, shared by every
// front-end.
package form

import (
	"errors"

	"github.com/tomz197/meteordodge/internal/input"
	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/score"
)

// ErrorMessage is shown when the submitted name is rejected.
const ErrorMessage = "Please enter your first name and a single last initial."

// Field selects which input has focus.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastInitial
)

// Action is what the form wants the caller to do after handling keys.
type Action int

const (
	ActionNone   Action = iota
	ActionSubmit        // Submit FirstName and LastInitial
	ActionCancel        // Leave the form
)

// NameForm collects a first name and last initial. Enter on the first name
// moves to the initial; Enter on the initial submits.
type NameForm struct {
	First   []rune
	Initial []rune
	Focus   Field
	Error   string
}

// Reset clears the form for a new entry.
func (f *NameForm) Reset() {
	*f = NameForm{}
}

// FirstName returns the typed first name.
func (f *NameForm) FirstName() string { return string(f.First) }

// LastInitial returns the typed initial.
func (f *NameForm) LastInitial() string { return string(f.Initial) }

// Handle applies keys in order and stops at the first submit or cancel.
func (f *NameForm) Handle(keys []input.Key) Action {
	for _, k := range keys {
		switch k.Code {
		case input.KeyRune:
			f.typeRune(k.Rune)
		case input.KeyBackspace:
			f.backspace()
		case input.KeyEnter:
			if f.Focus == FieldFirstName {
				f.Focus = FieldLastInitial
				continue
			}
			return ActionSubmit
		case input.KeyEscape, input.KeyInterrupt:
			return ActionCancel
		}
	}
	return ActionNone
}

// Reject records a failed submission. Only identity validation errors are
// shown; the message is the same for every invalid input.
func (f *NameForm) Reject(err error) {
	if errors.Is(err, score.ErrInvalidIdentity) {
		f.Error = ErrorMessage
	}
}

func (f *NameForm) typeRune(r rune) {
	f.Error = ""
	switch f.Focus {
	case FieldFirstName:
		if len(f.First) < config.MaxFirstNameLen {
			f.First = append(f.First, r)
		}
	case FieldLastInitial:
		f.Initial = []rune{r}
	}
}

func (f *NameForm) backspace() {
	f.Error = ""
	switch f.Focus {
	case FieldLastInitial:
		if len(f.Initial) == 0 {
			f.Focus = FieldFirstName
			return
		}
		f.Initial = f.Initial[:0]
	case FieldFirstName:
		if len(f.First) > 0 {
			f.First = f.First[:len(f.First)-1]
		}
	}
}
