package pushdown

import "github.com/enetx/g"

// Kind identifies which stack mutation a Transition requests.
type Kind uint8

const (
	// KindNone leaves the stack untouched.
	KindNone Kind = iota
	// KindPop removes the active state and resumes the one beneath it.
	KindPop
	// KindPush suspends the active state and starts a new one above it.
	KindPush
	// KindSwitch replaces the active state without resuming anything.
	KindSwitch
	// KindQuit unwinds the whole stack and stops the machine.
	KindQuit
)

var kindNames = [...]g.String{
	KindNone:   "none",
	KindPop:    "pop",
	KindPush:   "push",
	KindSwitch: "switch",
	KindQuit:   "quit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return string(kindNames[k])
	}

	return "unknown"
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if string(name) == string(text) {
			*k = Kind(i)
			return nil
		}
	}

	return &ErrUnknownKind{Kind: g.String(text)}
}

// Transition is the single stack mutation a state may request from Update or
// HandleEvent. The zero value is None.
type Transition struct {
	kind  Kind
	state State
}

// None requests no change.
func None() Transition { return Transition{} }

// Pop requests removal of the active state.
func Pop() Transition { return Transition{kind: KindPop} }

// Push requests that s be started above the active state, which is paused.
// A nil s is ignored. A typed nil pointer is not detected: its hooks are
// called like any other state's, so callers must not pass one.
func Push(s State) Transition { return Transition{kind: KindPush, state: s} }

// Switch requests that the active state be stopped and replaced by s.
// Nil handling is the same as for Push.
func Switch(s State) Transition { return Transition{kind: KindSwitch, state: s} }

// Quit requests that every state be stopped and the machine shut down.
func Quit() Transition { return Transition{kind: KindQuit} }

// Kind reports the requested mutation.
func (t Transition) Kind() Kind { return t.kind }

// State returns the incoming state of a Push or Switch, nil otherwise.
func (t Transition) State() State { return t.state }

func (t Transition) String() string {
	if t.state == nil {
		return t.kind.String()
	}

	return t.kind.String() + "(" + string(Name(t.state)) + ")"
}
