package pushdown

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrUnknownKind is returned when decoding a transition kind whose name is not
// one of none, pop, push, switch or quit.
type ErrUnknownKind struct {
	Kind g.String
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("pushdown: unknown transition kind %q", e.Kind)
}
