// Package powerline compiles compact segment descriptors into powerline-style
// shell prompts.
//
// A descriptor is a string of chained segments, each terminated by a glyph
// character:
//
//	(fg;bg)value>   right arrow into the next segment
//	(fg;bg)value<   left arrow into the next segment
//	(fg;bg)value|   no glyph
//
// The value is a literal, a shell variable ($VAR), a captured command
// ($(cmd)), or a conditional (?N<test>;true;false or ?else$(cmd)).
package powerline

// Glyph is the shape drawn between a segment and the next one.
type Glyph int

// Glyph kinds
const (
	GlyphNone  Glyph = iota // No separator glyph
	GlyphRight              // Arrow pointing right, drawn with '>'
	GlyphLeft               // Arrow pointing left, drawn with '<'
)

// Segment is one colored, glyph-terminated unit of prompt output.
// An empty color inherits whatever color is currently active.
type Segment struct {
	Foreground string
	Background string
	Value      string // Raw value expression
	End        Glyph
}

// ResolvedValue is the renderable form of a value expression.
// Condition, when set, is the dialect guard that selects between
// Rendered and Else at prompt time.
type ResolvedValue struct {
	Rendered     string
	Condition    string
	HasCondition bool
	Else         string
	HasElse      bool
}

// ExprKind tags the variants of a parsed value expression.
type ExprKind int

// Expression kinds
const (
	ExprLiteral        ExprKind = iota // Verbatim text
	ExprShellVar                       // $NAME, expanded by the shell
	ExprCommandCapture                 // $(cmd), captured into a positional slot
	ExprGuardedCapture                 // ?else$(cmd), shown only when the capture is non-empty
	ExprConditional                    // ?N<test>;true[;false]
)

// Expr is a parsed value expression.
// Which fields are meaningful depends on Kind.
type Expr struct {
	Kind ExprKind
	Text string // Literal, ShellVar, CommandCapture and GuardedCapture command text

	Else string // GuardedCapture: literal text shown when the capture is empty

	Digits string // Conditional: numeric guard argument
	Test   string // Conditional: remaining test text after the digits
	True   *Expr  // Conditional: branch when the test holds
	False  *Expr  // Conditional: branch otherwise, nil when absent
}

// Options controls rendering.
type Options struct {
	Separator string  // Padding placed around every non-newline value
	Dialect   Dialect // Target shell syntax; Zsh when nil
}

// Prompt is a compiled prompt: one fragment per input descriptor plus the
// ordered capture expressions backing the positional slots.
type Prompt struct {
	Fragments []string
	Captures  []string
	dialect   Dialect
}
