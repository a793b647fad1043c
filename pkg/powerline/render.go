package powerline

import (
	"log/slog"
	"strings"
)

// renderState is the cumulative state threaded through consecutive segments.
type renderState struct {
	foreground string
	background string
	lastGlyph  Glyph
	captures   []string // captures[i] backs positional slot i+1
}

// Renderer turns segments into dialect output one at a time, carrying the
// colors and glyph of the previous segment into the next.
// A Renderer must not be used concurrently.
type Renderer struct {
	dialect   Dialect
	separator string
	state     renderState
}

// NewRenderer creates a renderer for a single render pass.
func NewRenderer(opts Options) *Renderer {
	dialect := opts.Dialect
	if dialect == nil {
		dialect = NewZsh(DefaultGlyphs())
	}
	return &Renderer{
		dialect:   dialect,
		separator: opts.Separator,
	}
}

// Render emits the fragment for one segment and advances the state.
func (r *Renderer) Render(segment Segment) (string, error) {
	expr, err := ParseExpr(segment.Value)
	if err != nil {
		return "", err
	}
	value := r.resolve(expr)
	value.Rendered = expandEscapes(value.Rendered)

	var b strings.Builder
	sep := r.separator

	switch {
	case value.Rendered == "\n":
		b.WriteString(r.boundary(segment))
		b.WriteString(r.setForeground(segment.Foreground))
		b.WriteString(value.Rendered)
		b.WriteString(r.setForeground(segment.Background))

	case !value.HasCondition:
		b.WriteString(r.boundary(segment))
		b.WriteString(r.setForeground(segment.Foreground))
		b.WriteString(sep + value.Rendered + sep)
		b.WriteString(r.setForeground(segment.Background))

	case !value.HasElse:
		var body strings.Builder
		body.WriteString(r.boundary(segment))
		body.WriteString(r.setForeground(segment.Foreground))
		body.WriteString(sep + value.Rendered + sep)
		body.WriteString(r.setForeground(segment.Background))
		b.WriteString(r.dialect.Conditional(value.Condition, body.String(), ""))

	default:
		b.WriteString(r.boundary(segment))
		b.WriteString(r.setForeground(segment.Foreground))
		b.WriteString(sep)
		b.WriteString(r.dialect.Conditional(value.Condition, value.Rendered, value.Else))
		b.WriteString(sep)
		b.WriteString(r.setForeground(segment.Background))
	}

	slog.Debug("Rendered segment", "segment", segment.String(), "expr", expr.String(), "slots", len(r.state.captures))
	return b.String(), nil
}

// RenderAll renders segments in order and concatenates their fragments.
func (r *Renderer) RenderAll(segments []Segment) (string, error) {
	var b strings.Builder
	for _, segment := range segments {
		fragment, err := r.Render(segment)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}

// Captures returns the capture expressions in slot order.
func (r *Renderer) Captures() []string {
	out := make([]string, len(r.state.captures))
	copy(out, r.state.captures)
	return out
}

// resolve turns a parsed expression into renderable text, registering any
// command captures it contains.
func (r *Renderer) resolve(e Expr) ResolvedValue {
	switch e.Kind {
	case ExprCommandCapture:
		slot := r.addCapture(e.Text)
		return ResolvedValue{Rendered: r.dialect.Placeholder(slot)}

	case ExprGuardedCapture:
		slot := r.addCapture(e.Text)
		return ResolvedValue{
			Rendered:     r.dialect.Placeholder(slot),
			Condition:    r.dialect.CaptureGuard(slot),
			HasCondition: true,
			Else:         e.Else,
			HasElse:      e.Else != "",
		}

	case ExprConditional:
		value := ResolvedValue{
			Condition:    r.dialect.TestGuard(e.Digits, e.Test),
			HasCondition: true,
		}
		// Branches only contribute their text; nested guards are dropped.
		value.Rendered = r.resolve(*e.True).Rendered
		if e.False != nil {
			value.Else = r.resolve(*e.False).Rendered
			value.HasElse = value.Else != ""
		}
		return value

	default:
		return ResolvedValue{Rendered: e.Text}
	}
}

func (r *Renderer) addCapture(expr string) int {
	r.state.captures = append(r.state.captures, expr)
	return len(r.state.captures)
}

// boundary draws the transition from the previous segment into this one:
// after a left arrow the glyph is painted in the new background, otherwise
// it keeps the old background's color set by the previous segment.
func (r *Renderer) boundary(segment Segment) string {
	var b strings.Builder

	if r.state.lastGlyph == GlyphLeft {
		b.WriteString(r.setForeground(segment.Background))
		b.WriteString(r.dialect.Glyph(r.state.lastGlyph))
		b.WriteString(r.setBackground(segment.Background))
	} else {
		b.WriteString(r.setBackground(segment.Background))
		b.WriteString(r.dialect.Glyph(r.state.lastGlyph))
	}

	r.state.lastGlyph = segment.End
	return b.String()
}

// setForeground emits a foreground change unless color is empty or already
// active.
func (r *Renderer) setForeground(color string) string {
	if color == "" || color == r.state.foreground {
		return ""
	}
	r.state.foreground = color
	return r.dialect.Foreground(color)
}

// setBackground emits a background change unless color is empty or already
// active.
func (r *Renderer) setBackground(color string) string {
	if color == "" || color == r.state.background {
		return ""
	}
	r.state.background = color
	return r.dialect.Background(color)
}
