package pushdown_test

import (
	"encoding/json"
	"testing"

	"github.com/enetx/g"
	. "github.com/enetx/pushdown"
)

func TestMachine_Snapshot(t *testing.T) {
	calls := g.NewSlice[g.String]()
	game := newRecorder("game", &calls)
	pause := newRecorder("pause", &calls)
	game.updates = []Transition{Push(pause)}

	m := New(game)
	m.Start()
	m.Update()

	data, err := json.Marshal(m)
	assertNoError(t, err)

	var snap Snapshot
	assertNoError(t, json.Unmarshal(data, &snap))

	assertEqual(t, snap.ID, m.ID())
	assertTrue(t, snap.Running)
	assertTrue(t, snap.Stack.Eq(g.SliceOf[g.String]("game", "pause")))
	assertEqual(t, snap.History.Len(), 1)
	assertEqual(t, snap.History[0], Record{Kind: KindPush, State: "pause", Depth: 2})
}

func TestMachine_SnapshotAfterQuit(t *testing.T) {
	calls := g.NewSlice[g.String]()
	a := newRecorder("a", &calls)
	a.updates = []Transition{Quit()}

	m := New(a)
	m.Start()
	m.Update()

	data, err := json.Marshal(m)
	assertNoError(t, err)

	var snap Snapshot
	assertNoError(t, json.Unmarshal(data, &snap))

	assertFalse(t, snap.Running)
	assertEqual(t, snap.Stack.Len(), 0)
	assertEqual(t, snap.History[0].Kind, KindQuit)
}

func TestSnapshot_UnknownKind(t *testing.T) {
	var snap Snapshot
	err := json.Unmarshal([]byte(`{"history":[{"kind":"teleport","depth":1}]}`), &snap)
	assertError(t, err)
}
