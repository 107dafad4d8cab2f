package walker

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"evilgen/internal/loop"
	"evilgen/internal/pattern"
)

const DefaultMaxPaths = 64

type Option func(*Walker)

func WithMaxPaths(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.maxPaths = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.log = l
		}
	}
}

// Walker enumerates concrete paths through a pattern and derives test
// strings from them.
type Walker struct {
	pat      *pattern.Pattern
	maxPaths int
	log      *zap.Logger
}

func New(p *pattern.Pattern, opts ...Option) *Walker {
	w := &Walker{pat: p, maxPaths: DefaultMaxPaths, log: zap.NewNop()}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Path is one choice of alternative per element.
type Path struct {
	Bodies  []string // chosen alternative per element
	Text    string   // every element once
	MinIter string   // every quantifier at its lower bound

	// contribution of each element to MinIter
	parts []string
	// exploration recorded at each quantified element, by element index
	explorations map[int]loop.Exploration
}

func (p *Path) Exploration(element int) (loop.Exploration, bool) {
	e, ok := p.explorations[element]
	return e, ok
}

// Paths returns up to the configured maximum number of paths, varying the
// last element fastest.
func (w *Walker) Paths(ctx context.Context) ([]Path, error) {
	els := w.pat.Elements
	idx := make([]int, len(els))
	var out []Path
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		bodies := make([]string, len(els))
		for i, el := range els {
			bodies[i] = el.Alternatives[idx[i]]
		}
		p, err := w.walk(bodies)
		if err != nil {
			return out, err
		}
		w.log.Debug("path",
			zap.String("text", p.Text),
			zap.String("min_iter", p.MinIter))
		out = append(out, p)
		if len(out) >= w.maxPaths {
			w.log.Debug("path limit reached", zap.Int("max_paths", w.maxPaths))
			return out, nil
		}
		if !advance(idx, els) {
			return out, nil
		}
	}
}

func advance(idx []int, els []pattern.Element) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(els[i].Alternatives) {
			return true
		}
		idx[i] = 0
	}
	return false
}

func (w *Walker) walk(bodies []string) (Path, error) {
	p := Path{
		Bodies:       bodies,
		Text:         strings.Join(bodies, ""),
		parts:        make([]string, len(bodies)),
		explorations: map[int]loop.Exploration{},
	}
	acc := ""
	for i, el := range w.pat.Elements {
		if el.Loop == nil {
			acc += bodies[i]
			p.parts[i] = bodies[i]
			continue
		}
		e := loop.Explore(acc)
		acc += bodies[i]
		e, err := e.WithCandidate(acc)
		if err != nil {
			return p, fmt.Errorf("element %d: %w", i, err)
		}
		acc = el.Loop.MinIterString(e, acc)
		p.parts[i] = acc[len(e.Prefix):]
		p.explorations[i] = e
	}
	p.MinIter = acc
	return p, nil
}

// testString is the path's minimum iteration string with the quantifier at
// element i holding at least one iteration.
func (p *Path) testString(i int, n *loop.Node) string {
	e := p.explorations[i]
	reps := n.Lower()
	if reps < 1 {
		reps = 1
	}
	return e.Prefix + strings.Repeat(e.Substring, reps) + strings.Join(p.parts[i+1:], "")
}

type Probe struct {
	loop.Probe
	Element    int
	Quantifier string
	Optional   bool
}

type Result struct {
	Pattern    *pattern.Pattern
	Candidates []string // path and minimum iteration strings, first seen order
	Probes     []Probe
}

// Generate walks the pattern, commits every quantifier on the first path
// and collects its boundary probes.
func (w *Walker) Generate(ctx context.Context) (*Result, error) {
	paths, err := w.Paths(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{Pattern: w.pat}
	seen := map[string]bool{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			res.Candidates = append(res.Candidates, s)
		}
	}
	for _, p := range paths {
		add(p.Text)
		add(p.MinIter)
	}

	first := paths[0]
	for i, el := range w.pat.Elements {
		n := el.Loop
		if n == nil {
			continue
		}
		if err := n.Commit(first.explorations[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		test := first.testString(i, n)
		probes, err := n.Probes(test)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		w.log.Debug("committed quantifier",
			zap.Int("element", i),
			zap.String("quantifier", n.String()),
			zap.String("prefix", n.Prefix()),
			zap.String("substring", n.Substring()),
			zap.Int("probes", len(probes)))
		for _, pr := range probes {
			res.Probes = append(res.Probes, Probe{
				Probe:      pr,
				Element:    i,
				Quantifier: n.String(),
				Optional:   n.IsOptional(),
			})
		}
	}
	w.log.Info("generated",
		zap.String("pattern", w.pat.Source),
		zap.Int("paths", len(paths)),
		zap.Int("candidates", len(res.Candidates)),
		zap.Int("probes", len(res.Probes)))
	return res, nil
}
