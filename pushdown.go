// Package pushdown provides a stack-based (pushdown) state machine for driving
// the screen and mode flow of interactive programs: title screens, gameplay,
// pause menus, inventories and the like.
//
// Only the state on top of the stack is active. The host calls HandleEvent,
// Update and Render once per frame; the active state answers with a Transition
// which the machine applies before returning. Stack storage and history are
// built with types from the github.com/enetx/g library.
package pushdown

import (
	"log/slog"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Machine owns a stack of states and applies the transitions they request.
//
// A Machine is not safe for concurrent use; see SyncMachine.
type Machine struct {
	id      string
	states  g.Slice[State]
	started bool

	history g.Slice[Record]
	hooks   g.Slice[TransitionHook]
	logger  *slog.Logger
}

// New creates a machine whose stack holds only initial. No hook fires until
// Start is called. A nil initial state yields a machine that never starts.
func New(initial State) *Machine {
	id := uuid.NewString()

	states := g.NewSlice[State]()
	if initial != nil {
		states.Push(initial)
	}

	return &Machine{
		id:      id,
		states:  states,
		history: g.NewSlice[Record](),
		hooks:   g.NewSlice[TransitionHook](),
		logger:  slog.Default().With("machine_id", id),
	}
}

// WithLogger sets the logger used for lifecycle and transition messages.
func (m *Machine) WithLogger(l *slog.Logger) *Machine {
	if l != nil {
		m.logger = l.With("machine_id", m.id)
	}

	return m
}

// ID returns the unique identifier attached to the machine's log records.
func (m *Machine) ID() string { return m.id }

// IsRunning reports whether the machine has been started and still has at
// least one state on its stack.
func (m *Machine) IsRunning() bool { return m.started && m.states.NotEmpty() }

// Len returns the current stack depth.
func (m *Machine) Len() int { return len(m.states) }

// Start fires OnStart on the initial state and starts the machine. It does
// nothing if the machine is already running or its stack has been emptied.
func (m *Machine) Start() {
	if m.started {
		return
	}

	top := m.top()
	if top.IsNone() {
		return
	}

	top.Some().OnStart()
	m.started = true

	m.logger.Debug("machine started", "state", string(Name(top.Some())))
}

// Stop unwinds the stack exactly like a Quit transition, calling OnStop on
// every state from the top down.
func (m *Machine) Stop() {
	if m.IsRunning() {
		m.quit()
	}
}

// Render draws the active state. States below it are never rendered.
func (m *Machine) Render(surface Surface) {
	if !m.IsRunning() {
		return
	}

	if top := m.top(); top.IsSome() {
		top.Some().Render(surface)
	}
}

// Update ticks the active state and applies the transition it returns.
func (m *Machine) Update() {
	if !m.IsRunning() {
		return
	}

	trans := None()
	if top := m.top(); top.IsSome() {
		trans = top.Some().Update()
	}

	m.apply(trans)
}

// HandleEvent passes event to the active state and applies the transition it
// returns.
func (m *Machine) HandleEvent(event Event) {
	if !m.IsRunning() {
		return
	}

	trans := None()
	if top := m.top(); top.IsSome() {
		trans = top.Some().HandleEvent(event)
	}

	m.apply(trans)
}

// Sync wraps the machine for use from more than one goroutine. The machine
// must not be used directly afterwards.
func (m *Machine) Sync() *SyncMachine { return newSyncMachine(m) }

func (m *Machine) apply(trans Transition) {
	if !m.IsRunning() {
		return
	}

	switch trans.kind {
	case KindPop:
		m.pop()
	case KindPush:
		if trans.state == nil {
			m.logger.Warn("push with nil state ignored")
			return
		}
		m.push(trans.state)
	case KindSwitch:
		if trans.state == nil {
			m.logger.Warn("switch with nil state ignored")
			return
		}
		m.switchTo(trans.state)
	case KindQuit:
		m.quit()
	}
}

func (m *Machine) pop() {
	var name g.String
	if popped := m.popTop(); popped.IsSome() {
		name = Name(popped.Some())
		popped.Some().OnStop()
	}

	// An empty stack stops the machine; nothing is left to resume.
	if top := m.top(); top.IsSome() {
		top.Some().OnResume()
	} else {
		m.logger.Debug("machine stopped", "reason", "stack empty")
	}

	m.record(KindPop, name)
}

func (m *Machine) push(s State) {
	if top := m.top(); top.IsSome() {
		top.Some().OnPause()
	}

	m.states.Push(s)
	s.OnStart()

	m.record(KindPush, Name(s))
}

func (m *Machine) switchTo(s State) {
	if old := m.popTop(); old.IsSome() {
		old.Some().OnStop()
	}

	m.states.Push(s)
	s.OnStart()

	m.record(KindSwitch, Name(s))
}

func (m *Machine) quit() {
	for {
		s := m.popTop()
		if s.IsNone() {
			break
		}
		s.Some().OnStop()
	}

	m.logger.Debug("machine stopped", "reason", "quit")
	m.record(KindQuit, "")
}

// top returns the active state, or None on an empty stack.
func (m *Machine) top() g.Option[State] {
	if m.states.Empty() {
		return g.None[State]()
	}

	return g.Some(m.states[len(m.states)-1])
}

// popTop removes the active state from the stack and returns it.
func (m *Machine) popTop() g.Option[State] {
	n := len(m.states)
	if n == 0 {
		return g.None[State]()
	}

	s := m.states[n-1]
	m.states[n-1] = nil
	m.states = m.states[:n-1]

	return g.Some(s)
}
