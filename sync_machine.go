package pushdown

import (
	"sync"

	"github.com/enetx/g"
	"go.uber.org/atomic"
)

// SyncMachine is a thread-safe wrapper around a Machine.
// Every operation runs under one mutex, so the stack still has a single
// logical owner at any time. IsRunning reads an atomic mirror and never waits
// for an Update or HandleEvent in progress.
//
// States must not call back into the SyncMachine that drives them.
type SyncMachine struct {
	m       *Machine
	mu      sync.Mutex
	running atomic.Bool
}

func newSyncMachine(m *Machine) *SyncMachine {
	sm := &SyncMachine{m: m}
	sm.running.Store(m.IsRunning())

	return sm
}

// do runs fn under the lock and refreshes the running mirror afterwards.
func (sm *SyncMachine) do(fn func(m *Machine)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	fn(sm.m)
	sm.running.Store(sm.m.IsRunning())
}

// Start is the thread-safe version of Machine.Start.
func (sm *SyncMachine) Start() { sm.do((*Machine).Start) }

// Stop is the thread-safe version of Machine.Stop.
func (sm *SyncMachine) Stop() { sm.do((*Machine).Stop) }

// Update is the thread-safe version of Machine.Update.
func (sm *SyncMachine) Update() { sm.do((*Machine).Update) }

// HandleEvent is the thread-safe version of Machine.HandleEvent.
func (sm *SyncMachine) HandleEvent(event Event) {
	sm.do(func(m *Machine) { m.HandleEvent(event) })
}

// Render is the thread-safe version of Machine.Render.
func (sm *SyncMachine) Render(surface Surface) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.Render(surface)
}

// IsRunning reports the running flag as of the last completed operation.
func (sm *SyncMachine) IsRunning() bool { return sm.running.Load() }

// Len is the thread-safe version of Machine.Len.
func (sm *SyncMachine) Len() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Len()
}

// ID returns the wrapped machine's identifier.
func (sm *SyncMachine) ID() string { return sm.m.ID() }

// History is the thread-safe version of Machine.History.
func (sm *SyncMachine) History() g.Slice[Record] {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.History()
}

// ClearHistory is the thread-safe version of Machine.ClearHistory.
func (sm *SyncMachine) ClearHistory() { sm.do((*Machine).ClearHistory) }

// ToDOT is the thread-safe version of Machine.ToDOT.
func (sm *SyncMachine) ToDOT() g.String {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine's snapshot.
func (sm *SyncMachine) MarshalJSON() ([]byte, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.MarshalJSON()
}
