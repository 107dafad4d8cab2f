package loop

// ProbeKind names the iteration boundary an evil string sits on.
type ProbeKind int

const (
	OneLess   ProbeKind = iota // one iteration fewer than the path holds
	OneMore                    // one iteration more than the path holds
	AtUpper                    // exactly the upper bound
	PastUpper                  // upper bound plus one
)

var probeNames = [...]string{
	OneLess:   "one-less",
	OneMore:   "one-more",
	AtUpper:   "at-upper",
	PastUpper: "past-upper",
}

func (k ProbeKind) String() string {
	if k < 0 || int(k) >= len(probeNames) {
		return "unknown"
	}
	return probeNames[k]
}

type Probe struct {
	Kind ProbeKind
	Text string
}
