package pushdown

import "github.com/enetx/g"

// StateMachine is the surface shared by Machine and SyncMachine.
type StateMachine interface {
	Start()
	Stop()
	IsRunning() bool
	Render(Surface)
	Update()
	HandleEvent(Event)
	Len() int
	ID() string
	History() g.Slice[Record]
	ClearHistory()
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
}

// Interface compliance checks.
var (
	_ StateMachine = (*Machine)(nil)
	_ StateMachine = (*SyncMachine)(nil)
)
