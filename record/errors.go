package record

import (
	"errors"
	"fmt"
)

// ErrNoAdapter is returned when a terminal operation runs before an
// adapter has been installed with Use.
var ErrNoAdapter = errors.New("record: no adapter configured")

// UnknownScopeError is recorded when a traversal is asked to apply a
// scope its entity type does not declare. It surfaces on the next
// terminal call rather than mid-chain.
type UnknownScopeError struct {
	Name string
}

func (e *UnknownScopeError) Error() string {
	return fmt.Sprintf("record: unknown scope %q", e.Name)
}
