package pushdown

import (
	"fmt"

	"github.com/enetx/g"
)

type (
	// Record describes one applied transition.
	Record struct {
		// Kind is the mutation that was applied.
		Kind Kind `json:"kind"`
		// State names the incoming state for push and switch, and the
		// removed state for pop. It is empty for quit.
		State g.String `json:"state,omitempty"`
		// Depth is the stack depth once the transition completed.
		Depth int `json:"depth"`
	}

	// TransitionHook is called after every applied transition, once all
	// lifecycle hooks involved in it have returned. None is never reported.
	TransitionHook func(r Record)
)

// History returns a copy of every transition applied so far, oldest first.
func (m *Machine) History() g.Slice[Record] { return m.history.Clone() }

// ClearHistory drops every recorded transition. Long-running hosts call it
// to keep the history from growing without bound.
func (m *Machine) ClearHistory() { m.history = g.NewSlice[Record]() }

// OnTransition registers a hook called after each applied transition.
func (m *Machine) OnTransition(hook TransitionHook) *Machine {
	m.hooks.Push(hook)
	return m
}

func (m *Machine) record(kind Kind, name g.String) {
	r := Record{Kind: kind, State: name, Depth: len(m.states)}
	m.history.Push(r)

	m.logger.Debug("transition applied",
		"kind", kind.String(),
		"state", string(name),
		"depth", r.Depth,
		"running", m.IsRunning(),
	)

	for hook := range m.hooks.Iter() {
		m.safeHook(hook, r)
	}
}

// safeHook runs a transition hook, recovering from a panic so the hooks
// registered after it still run.
func (m *Machine) safeHook(hook TransitionHook, r Record) {
	defer func() {
		if p := recover(); p != nil {
			m.logger.Error("transition hook panicked",
				"kind", r.Kind.String(),
				"state", string(r.State),
				"panic", fmt.Sprint(p),
			)
		}
	}()

	hook(r)
}
