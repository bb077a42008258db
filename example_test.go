package pushdown_test

import (
	"fmt"
	"io"
	"os"

	"github.com/enetx/pushdown"
)

// screen is a minimal state that prints its lifecycle and reacts to keys.
type screen struct {
	name string
	keys map[rune]func() pushdown.Transition
}

func (s *screen) String() string { return s.name }

func (s *screen) Render(surface pushdown.Surface) {
	fmt.Fprintf(surface.(io.Writer), "[%s]\n", s.name)
}

func (s *screen) Update() pushdown.Transition { return pushdown.None() }

func (s *screen) HandleEvent(event pushdown.Event) pushdown.Transition {
	if fn, ok := s.keys[event.(rune)]; ok {
		return fn()
	}

	return pushdown.None()
}

func (s *screen) OnStart()  { fmt.Println("start", s.name) }
func (s *screen) OnStop()   { fmt.Println("stop", s.name) }
func (s *screen) OnPause()  { fmt.Println("pause", s.name) }
func (s *screen) OnResume() { fmt.Println("resume", s.name) }

// Example walks a title screen into gameplay, opens and closes a pause menu,
// then quits.
func Example() {
	pause := &screen{name: "pause"}
	pause.keys = map[rune]func() pushdown.Transition{
		'p': pushdown.Pop,
	}

	game := &screen{name: "game"}
	game.keys = map[rune]func() pushdown.Transition{
		'p': func() pushdown.Transition { return pushdown.Push(pause) },
		'q': pushdown.Quit,
	}

	title := &screen{name: "title"}
	title.keys = map[rune]func() pushdown.Transition{
		'\n': func() pushdown.Transition { return pushdown.Switch(game) },
	}

	m := pushdown.New(title)
	m.Start()

	for _, key := range "\npp" {
		m.HandleEvent(key)
		m.Update()
		m.Render(os.Stdout)
	}

	m.HandleEvent('q')
	fmt.Println("running:", m.IsRunning())

	// Output:
	// start title
	// stop title
	// start game
	// [game]
	// pause game
	// start pause
	// [pause]
	// stop pause
	// resume game
	// [game]
	// stop game
	// running: false
}

// Example_quitFromOverlay shows that Quit stops every stacked state, top first.
func Example_quitFromOverlay() {
	inventory := &screen{name: "inventory"}
	inventory.keys = map[rune]func() pushdown.Transition{'q': pushdown.Quit}

	game := &screen{name: "game"}
	game.keys = map[rune]func() pushdown.Transition{
		'i': func() pushdown.Transition { return pushdown.Push(inventory) },
	}

	m := pushdown.New(game)
	m.Start()
	m.HandleEvent('i')
	m.HandleEvent('q')

	fmt.Println(m.Len(), m.IsRunning())

	// Output:
	// start game
	// pause game
	// start inventory
	// stop inventory
	// stop game
	// 0 false
}
