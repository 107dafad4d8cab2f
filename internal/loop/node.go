package loop

import (
	"fmt"
	"io"
	"strings"
)

// Node is one repeat quantifier (* + ? {n} {n,} {n,m}) on a regex path.
//
// Bounds are fixed at construction. The prefix and substring of the
// chosen path are written once by Commit and then drive EvilStrings.
type Node struct {
	lower int
	upper Bound

	prefix    string // text of the committed path before the loop
	substring string // one iteration of the loop on that path
	committed bool
}

// MaxRepeat is the largest count accepted for either bound, the same
// limit regexp/syntax applies.
const MaxRepeat = 1000

func New(lower int, upper Bound) (*Node, error) {
	if lower < 0 || lower > MaxRepeat {
		return nil, fmt.Errorf("lower bound %d: %w", lower, ErrInvalidBounds)
	}
	if n, ok := upper.Value(); ok && (n < lower || n > MaxRepeat) {
		return nil, fmt.Errorf("{%d,%d}: %w", lower, n, ErrInvalidBounds)
	}
	return &Node{lower: lower, upper: upper}, nil
}

func (n *Node) Lower() int   { return n.lower }
func (n *Node) Upper() Bound { return n.upper }

// IsOptional reports whether the quantifier is ?.
func (n *Node) IsOptional() bool {
	u, ok := n.upper.Value()
	return ok && n.lower == 0 && u == 1
}

// MinIterationBody returns the iterations needed on top of the one the
// candidate already carries to reach the lower bound.
func (n *Node) MinIterationBody(e Exploration) string {
	if n.lower <= 1 {
		return ""
	}
	return strings.Repeat(e.Substring, n.lower-1)
}

// MinIterString extends acc towards the minimum iteration string. With a
// zero lower bound the loop is dropped and acc is replaced by the prefix;
// otherwise the missing iterations are appended to acc.
func (n *Node) MinIterString(e Exploration, acc string) string {
	if n.lower == 0 {
		return e.Prefix
	}
	return acc + n.MinIterationBody(e)
}

// Commit fixes the prefix and iteration body used for evil strings.
func (n *Node) Commit(e Exploration) error {
	if n.committed {
		return fmt.Errorf("%s: %w", n, ErrAlreadyCommitted)
	}
	n.prefix = e.Prefix
	n.substring = e.Substring
	n.committed = true
	return nil
}

func (n *Node) Committed() bool   { return n.committed }
func (n *Node) Prefix() string    { return n.prefix }
func (n *Node) Substring() string { return n.substring }

// EvilStrings returns the boundary strings for test, which must start with
// the committed prefix followed by one iteration.
func (n *Node) EvilStrings(test string) ([]string, error) {
	probes, err := n.Probes(test)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(probes))
	for i, p := range probes {
		out[i] = p.Text
	}
	return out, nil
}

// Probes is EvilStrings with each string tagged by the boundary it probes.
func (n *Node) Probes(test string) ([]Probe, error) {
	if !n.committed {
		return nil, fmt.Errorf("%s: %w", n, ErrNotCommitted)
	}
	head := n.prefix + n.substring
	if !strings.HasPrefix(test, head) {
		return nil, fmt.Errorf("test string %q, want prefix %q: %w", test, head, ErrBoundaryViolation)
	}
	suffix := test[len(head):]

	oneLess := Probe{Kind: OneLess, Text: n.prefix + suffix}
	oneMore := Probe{Kind: OneMore, Text: n.prefix + n.substring + n.substring + suffix}

	upper, bounded := n.upper.Value()
	if !bounded {
		if n.lower == 0 || n.lower == 1 {
			return []Probe{oneLess, oneMore}, nil
		}
		return []Probe{oneLess}, nil
	}
	if n.lower == upper {
		return []Probe{oneLess, oneMore}, nil
	}

	// test holds max(lower,1) iterations: one in substring, the rest in suffix
	base := n.lower
	if base == 0 {
		base = 1
	}
	elements := strings.Repeat(n.substring, upper-base+1)
	return []Probe{
		oneLess,
		{Kind: AtUpper, Text: n.prefix + elements + suffix},
		{Kind: PastUpper, Text: n.prefix + elements + n.substring + suffix},
	}, nil
}

// Print writes the canonical notation of the quantifier to w.
func (n *Node) Print(w io.Writer) error {
	_, err := io.WriteString(w, n.String())
	return err
}

func (n *Node) String() string {
	upper, bounded := n.upper.Value()
	switch {
	case n.lower == 0 && !bounded:
		return "*"
	case n.lower == 1 && !bounded:
		return "+"
	case n.lower == 0 && upper == 1:
		return "?"
	case !bounded:
		return fmt.Sprintf("{%d,}", n.lower)
	case n.lower == upper:
		return fmt.Sprintf("{%d}", n.lower)
	default:
		return fmt.Sprintf("{%d,%d}", n.lower, upper)
	}
}
