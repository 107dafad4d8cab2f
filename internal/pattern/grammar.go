package pattern

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar for the flat regex subset. Character classes, anchors and the
// dot lex as Unsupported, which no rule accepts.

type syntaxPattern struct {
	Terms []*syntaxTerm `parser:"@@*"`
}

type syntaxTerm struct {
	Atom       *syntaxAtom       `parser:"@@"`
	Quantifier *syntaxQuantifier `parser:"@@?"`
}

type syntaxAtom struct {
	Group   *syntaxGroup `parser:"  '(' @@ ')'"`
	Literal *string      `parser:"| @(Char | Digit | Escaped | ',')"`
}

type syntaxGroup struct {
	Branches []*syntaxBranch `parser:"@@ ( '|' @@ )*"`
}

type syntaxBranch struct {
	Text []string `parser:"@(Char | Digit | Escaped | ',')+"`
}

type syntaxQuantifier struct {
	Star   bool          `parser:"  @'*'"`
	Plus   bool          `parser:"| @'+'"`
	Opt    bool          `parser:"| @'?'"`
	Repeat *syntaxRepeat `parser:"| '{' @@ '}'"`
}

type syntaxRepeat struct {
	Min   string `parser:"@Digit+"`
	Comma bool   `parser:"@','?"`
	Max   string `parser:"@Digit*"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Digit", Pattern: `[0-9]`},
	{Name: "Punct", Pattern: `[(){}|*+?,]`},
	{Name: "Unsupported", Pattern: `[\[\]^$.]`},
	{Name: "Char", Pattern: `[^\\]`},
})

var parser = participle.MustBuild[syntaxPattern](
	participle.Lexer(patternLexer),
)
