package walker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"evilgen/internal/loop"
	"evilgen/internal/pattern"
)

func texts(probes []Probe) []string {
	out := make([]string, len(probes))
	for i, p := range probes {
		out[i] = p.Text
	}
	return out
}

func TestPathsEnumeratesAlternatives(t *testing.T) {
	w := New(pattern.MustParse("(a|b)x(c|d)"))
	paths, err := w.Paths(context.Background())
	require.NoError(t, err)

	var got []string
	for _, p := range paths {
		got = append(got, p.Text)
	}
	assert.Equal(t, []string{"axc", "axd", "bxc", "bxd"}, got)
}

func TestPathsMaxPaths(t *testing.T) {
	w := New(pattern.MustParse("(a|b)(c|d)(e|f)"), WithMaxPaths(3))
	paths, err := w.Paths(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, "ade", paths[2].Text)
}

func TestPathsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(pattern.MustParse("ab")).Paths(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMinIterString(t *testing.T) {
	tests := []struct {
		src  string
		text string
		min  string
	}{
		{"a(b){2,5}c", "abc", "abbc"},
		{"a*b{2}", "ab", "bb"},
		{"x(yz)?w", "xyzw", "xw"},
		{"(ab){3,}", "ab", "ababab"},
		{"abc", "abc", "abc"},
	}
	for _, tt := range tests {
		paths, err := New(pattern.MustParse(tt.src)).Paths(context.Background())
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.text, paths[0].Text, tt.src)
		assert.Equal(t, tt.min, paths[0].MinIter, tt.src)
	}
}

func TestPathExploration(t *testing.T) {
	paths, err := New(pattern.MustParse("a(bc)+d")).Paths(context.Background())
	require.NoError(t, err)

	e, ok := paths[0].Exploration(1)
	require.True(t, ok)
	assert.Equal(t, loop.Exploration{Prefix: "a", Substring: "bc"}, e)

	_, ok = paths[0].Exploration(0)
	assert.False(t, ok)
}

func TestGenerateRange(t *testing.T) {
	res, err := New(pattern.MustParse("a(b){2,5}c"), WithLogger(zaptest.NewLogger(t))).
		Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"abc", "abbc"}, res.Candidates)
	assert.Equal(t, []string{"abc", "abbbbbc", "abbbbbbc"}, texts(res.Probes))
	for _, p := range res.Probes {
		assert.Equal(t, "{2,5}", p.Quantifier)
		assert.Equal(t, 1, p.Element)
		assert.False(t, p.Optional)
	}
	assert.Equal(t, loop.AtUpper, res.Probes[1].Kind)
}

func TestGenerateOptional(t *testing.T) {
	res, err := New(pattern.MustParse("x(ab|c)?y")).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"xaby", "xy", "xcy"}, res.Candidates)
	assert.Equal(t, []string{"xy", "xaby", "xababy"}, texts(res.Probes))
	assert.True(t, res.Probes[0].Optional)
}

func TestGenerateSeveralLoops(t *testing.T) {
	res, err := New(pattern.MustParse("a*b{2}c{3,}")).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		// a*
		"bbccc", "aabbccc",
		// b{2}
		"bccc", "bbbccc",
		// c{3,}
		"bbcc",
	}, texts(res.Probes))
}

func TestGenerateCommitsOnce(t *testing.T) {
	w := New(pattern.MustParse("ab+"))
	_, err := w.Generate(context.Background())
	require.NoError(t, err)

	_, err = w.Generate(context.Background())
	assert.ErrorIs(t, err, loop.ErrAlreadyCommitted)
}

func TestGenerateNoLoops(t *testing.T) {
	res, err := New(pattern.MustParse("abc")).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, res.Candidates)
	assert.Empty(t, res.Probes)
}
