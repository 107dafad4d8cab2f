package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"evilgen/internal/loop"
)

var ErrSyntax = errors.New("unsupported pattern syntax")

// Element is one position of the pattern: a literal or a group of literal
// alternatives, optionally repeated.
type Element struct {
	Alternatives []string
	Group        bool
	Loop         *loop.Node // nil when the element is not quantified
}

type Pattern struct {
	Source   string
	Elements []Element
}

func Parse(src string) (*Pattern, error) {
	tree, err := parser.ParseString("pattern", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	p := &Pattern{Source: src}
	for _, term := range tree.Terms {
		el, err := buildElement(term)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", src, err)
		}
		p.Elements = append(p.Elements, el)
	}
	return p, nil
}

func MustParse(src string) *Pattern {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return p
}

func buildElement(term *syntaxTerm) (Element, error) {
	var el Element
	switch {
	case term.Atom.Group != nil:
		el.Group = true
		for _, b := range term.Atom.Group.Branches {
			var sb strings.Builder
			for _, tok := range b.Text {
				s, err := unescape(tok)
				if err != nil {
					return el, err
				}
				sb.WriteString(s)
			}
			el.Alternatives = append(el.Alternatives, sb.String())
		}
	case term.Atom.Literal != nil:
		s, err := unescape(*term.Atom.Literal)
		if err != nil {
			return el, err
		}
		el.Alternatives = []string{s}
	}

	if term.Quantifier != nil {
		n, err := buildLoop(term.Quantifier)
		if err != nil {
			return el, err
		}
		el.Loop = n
	}
	return el, nil
}

func buildLoop(q *syntaxQuantifier) (*loop.Node, error) {
	switch {
	case q.Star:
		return loop.New(0, loop.Unbounded())
	case q.Plus:
		return loop.New(1, loop.Unbounded())
	case q.Opt:
		return loop.New(0, loop.Bounded(1))
	}

	min, err := strconv.Atoi(q.Repeat.Min)
	if err != nil {
		return nil, fmt.Errorf("repeat {%s}: %w", q.Repeat.Min, loop.ErrInvalidBounds)
	}
	switch {
	case !q.Repeat.Comma:
		return loop.New(min, loop.Bounded(min))
	case q.Repeat.Max == "":
		return loop.New(min, loop.Unbounded())
	}
	max, err := strconv.Atoi(q.Repeat.Max)
	if err != nil {
		return nil, fmt.Errorf("repeat {%s,%s}: %w", q.Repeat.Min, q.Repeat.Max, loop.ErrInvalidBounds)
	}
	return loop.New(min, loop.Bounded(max))
}

func unescape(tok string) (string, error) {
	if len(tok) < 2 || tok[0] != '\\' {
		return tok, nil
	}
	switch c := tok[1]; c {
	case 'n':
		return "\n", nil
	case 't':
		return "\t", nil
	case 'r':
		return "\r", nil
	case 'd', 'D', 'w', 'W', 's', 'S', 'b', 'B':
		return "", fmt.Errorf("%w: escape %s", ErrSyntax, tok)
	default:
		return tok[1:], nil
	}
}

// Loops returns the quantifier nodes in pattern order.
func (p *Pattern) Loops() []*loop.Node {
	var out []*loop.Node
	for _, el := range p.Elements {
		if el.Loop != nil {
			out = append(out, el.Loop)
		}
	}
	return out
}

func (p *Pattern) String() string {
	var sb strings.Builder
	for _, el := range p.Elements {
		el.render(&sb)
	}
	return sb.String()
}

func (el Element) String() string {
	var sb strings.Builder
	el.render(&sb)
	return sb.String()
}

func (el Element) render(sb *strings.Builder) {
	if el.Group {
		sb.WriteByte('(')
		for i, alt := range el.Alternatives {
			if i > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(escape(alt))
		}
		sb.WriteByte(')')
	} else {
		sb.WriteString(escape(el.Alternatives[0]))
	}
	if el.Loop != nil {
		_ = el.Loop.Print(sb)
	}
}

const metaChars = `\()[]{}|*+?^$.`

func escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		case strings.ContainsRune(metaChars, r):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
