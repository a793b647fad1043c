package powerline

import (
	"fmt"
	"strings"
)

// ParseExpr parses a segment value expression. Forms are tried in order:
//
//	$(cmd)            command capture
//	?else$(cmd)       guarded capture, else text shown when cmd prints nothing
//	?N<test>;t[;f]    conditional keyed on N, branches parsed recursively
//	$NAME             shell variable
//	anything else     literal
func ParseExpr(value string) (Expr, error) {
	p := &exprParser{src: value}
	return p.parse()
}

// exprParser is a recursive-descent parser over a single value expression.
type exprParser struct {
	src string
	pos int
}

func (p *exprParser) rest() string {
	return p.src[p.pos:]
}

func (p *exprParser) parse() (Expr, error) {
	rest := p.rest()

	switch {
	case strings.HasPrefix(rest, "$("):
		p.pos = len(p.src)
		return Expr{Kind: ExprCommandCapture, Text: rest}, nil
	case strings.HasPrefix(rest, "?"):
		if dollar, ok := guardedCaptureStart(rest); ok {
			p.pos = len(p.src)
			return Expr{
				Kind: ExprGuardedCapture,
				Else: rest[1:dollar],
				Text: rest[dollar:],
			}, nil
		}
		return p.parseConditional()
	case strings.HasPrefix(rest, "$"):
		p.pos = len(p.src)
		return Expr{Kind: ExprShellVar, Text: rest}, nil
	default:
		p.pos = len(p.src)
		return Expr{Kind: ExprLiteral, Text: rest}, nil
	}
}

// guardedCaptureStart returns the index of the "$(" that makes s a guarded
// capture: it must come before the first ';'.
func guardedCaptureStart(s string) (int, bool) {
	dollar := strings.Index(s, "$(")
	if dollar == -1 {
		return 0, false
	}
	semi := strings.IndexByte(s, ';')
	if semi != -1 && semi < dollar {
		return 0, false
	}
	return dollar, true
}

// parseConditional parses ?N<test>;true[;false].
func (p *exprParser) parseConditional() (Expr, error) {
	p.pos++ // '?'

	digitsStart := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == digitsStart {
		return Expr{}, newParseError(ErrMalformedCondition, p.src, digitsStart, "condition must start with a numeric argument")
	}

	expr := Expr{
		Kind:   ExprConditional,
		Digits: p.src[digitsStart:p.pos],
		Test:   p.field(),
	}

	if !p.consume(';') {
		return Expr{}, newParseError(ErrIncompleteExpression, p.src, p.pos, "conditional needs a true branch")
	}

	trueBranch, err := p.parseBranch()
	if err != nil {
		return Expr{}, err
	}
	expr.True = trueBranch

	if p.consume(';') {
		falseBranch, err := p.parseBranch()
		if err != nil {
			return Expr{}, err
		}
		expr.False = falseBranch
	}

	if p.pos < len(p.src) {
		return Expr{}, newParseError(ErrMalformedCondition, p.src, p.pos, "conditional takes at most two branches")
	}

	return expr, nil
}

// parseBranch parses the next ';'-delimited field as a nested expression.
func (p *exprParser) parseBranch() (*Expr, error) {
	start := p.pos
	text := p.field()

	sub := &exprParser{src: text}
	branch, err := sub.parse()
	if err != nil {
		return nil, withBase(err, p.src, start)
	}
	return &branch, nil
}

// field consumes input up to, not including, the next ';'.
func (p *exprParser) field() string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ';' {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *exprParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// expandEscapes replaces the two-character sequence `\n` with a newline.
// No other escapes are recognized.
func expandEscapes(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// String returns a human-readable name for the expression kind
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "Literal"
	case ExprShellVar:
		return "ShellVar"
	case ExprCommandCapture:
		return "CommandCapture"
	case ExprGuardedCapture:
		return "GuardedCapture"
	case ExprConditional:
		return "Conditional"
	default:
		return "Unknown"
	}
}

// String returns a string representation of an expression
func (e Expr) String() string {
	switch e.Kind {
	case ExprGuardedCapture:
		return fmt.Sprintf("%s(%q else %q)", e.Kind, e.Text, e.Else)
	case ExprConditional:
		if e.False == nil {
			return fmt.Sprintf("%s(%s%s ? %s)", e.Kind, e.Digits, e.Test, e.True)
		}
		return fmt.Sprintf("%s(%s%s ? %s : %s)", e.Kind, e.Digits, e.Test, e.True, e.False)
	default:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	}
}
