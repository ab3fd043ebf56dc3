package dag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycle is the sentinel wrapped by every CycleError, for errors.Is checks.
var ErrCycle = errors.New("dependency cycle detected")

// CycleError reports a cycle in the dependency digraph. Path starts and ends
// with the same tag, e.g. [a b a].
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	if e == nil || len(e.Path) == 0 {
		return ErrCycle.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCycle.Error(), strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCycle }
