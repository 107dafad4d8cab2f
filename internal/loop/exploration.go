package loop

import (
	"fmt"
	"strings"
)

// Exploration is the in-progress view of a path at one quantifier: the
// text built before the loop and the text of one iteration. Values are
// immutable; every step returns a new one.
type Exploration struct {
	Prefix    string
	Substring string
}

func Explore(prefix string) Exploration {
	return Exploration{Prefix: prefix}
}

// WithCandidate returns a copy whose Substring is full without the prefix.
func (e Exploration) WithCandidate(full string) (Exploration, error) {
	if !strings.HasPrefix(full, e.Prefix) {
		return e, fmt.Errorf("candidate %q, prefix %q: %w", full, e.Prefix, ErrBoundaryViolation)
	}
	e.Substring = full[len(e.Prefix):]
	return e, nil
}
