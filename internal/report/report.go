package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"evilgen/internal/walker"
)

// Record is one NDJSON line per pattern.
type Record struct {
	Pattern string        `json:"pattern"`
	Inputs  []string      `json:"inputs"`
	Probes  []ProbeRecord `json:"probes"`
}

type ProbeRecord struct {
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	Quantifier string `json:"quantifier"`
	Element    int    `json:"element"`
	Optional   bool   `json:"optional,omitempty"`
}

// NewRecord flattens a result. Inputs holds every generated string, sorted
// and without duplicates.
func NewRecord(res *walker.Result) Record {
	rec := Record{Pattern: res.Pattern.Source, Inputs: []string{}, Probes: []ProbeRecord{}}
	seen := map[string]bool{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			rec.Inputs = append(rec.Inputs, s)
		}
	}
	for _, s := range res.Candidates {
		add(s)
	}
	for _, p := range res.Probes {
		add(p.Text)
		rec.Probes = append(rec.Probes, ProbeRecord{
			Text:       p.Text,
			Kind:       p.Kind.String(),
			Quantifier: p.Quantifier,
			Element:    p.Element,
			Optional:   p.Optional,
		})
	}
	sort.Strings(rec.Inputs)
	return rec
}

type Writer struct {
	enc *json.Encoder
}

func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

func (w *Writer) Write(res *walker.Result) error {
	return w.enc.Encode(NewRecord(res))
}

// Render prints a result as an aligned table.
func Render(w io.Writer, res *walker.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "pattern\t%s\n", res.Pattern.Source)
	for _, s := range res.Candidates {
		fmt.Fprintf(tw, "candidate\t%q\n", s)
	}
	for _, p := range res.Probes {
		opt := ""
		if p.Optional {
			opt = "optional"
		}
		fmt.Fprintf(tw, "%s\t%q\t%s\t#%d\t%s\n", p.Kind, p.Text, p.Quantifier, p.Element, opt)
	}
	return tw.Flush()
}
