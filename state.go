package pushdown

import (
	"fmt"
	"strings"

	"github.com/enetx/g"
)

type (
	// Event is an input notification, such as a single key press. The machine
	// forwards it to the active state without looking at it.
	Event any

	// Surface is whatever the host draws on. The machine passes it to the
	// active state's Render and never touches it.
	Surface any
)

// State is one screen or mode of the host application.
//
// A state never mutates the machine's stack directly: it asks for a change by
// returning a Transition from Update or HandleEvent. Embed Lifecycle to get
// no-op versions of the four hooks.
type State interface {
	// Render draws the state. It must not change anything the machine relies on.
	Render(surface Surface)
	// Update advances the state by one tick.
	Update() Transition
	// HandleEvent reacts to a single input event.
	HandleEvent(event Event) Transition

	// OnStart is called once the state becomes part of the stack.
	OnStart()
	// OnStop is called after the state has been removed from the stack.
	OnStop()
	// OnPause is called when another state is pushed above this one.
	OnPause()
	// OnResume is called when the state above this one is popped.
	OnResume()
}

// Lifecycle provides no-op lifecycle hooks. Embed it in a state and override
// only the hooks the state cares about.
type Lifecycle struct{}

func (Lifecycle) OnStart()  {}
func (Lifecycle) OnStop()   {}
func (Lifecycle) OnPause()  {}
func (Lifecycle) OnResume() {}

// Name returns a human-readable name for s: its String method if it has one,
// otherwise its dynamic type without the leading pointer star. A String method
// that panics, as on a typed nil pointer, also falls back to the type name.
func Name(s State) g.String {
	if s == nil {
		return "<nil>"
	}

	if str, ok := s.(fmt.Stringer); ok {
		if name, ok := stringOf(str); ok {
			return g.String(name)
		}
	}

	return g.String(strings.TrimPrefix(fmt.Sprintf("%T", s), "*"))
}

func stringOf(str fmt.Stringer) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()

	return str.String(), true
}
