package pushdown

import (
	"encoding/json"

	"github.com/enetx/g"
)

// Snapshot is a serializable, read-only view of a machine.
// States themselves are not serialized, only their names.
type Snapshot struct {
	ID      string            `json:"id"`
	Running bool              `json:"running"`
	Stack   g.Slice[g.String] `json:"stack"`
	History g.Slice[Record]   `json:"history"`
}

// Snapshot captures the machine's current stack, bottom first, and history.
func (m *Machine) Snapshot() Snapshot {
	stack := g.NewSlice[g.String]()
	for s := range m.states.Iter() {
		stack.Push(Name(s))
	}

	return Snapshot{
		ID:      m.id,
		Running: m.IsRunning(),
		Stack:   stack,
		History: m.history.Clone(),
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}
