package powerline

import (
	"fmt"
	"io"
	"strings"
)

// Dialect isolates every piece of target-shell syntax the renderer emits.
type Dialect interface {
	// Name identifies the dialect on the command line and in config files.
	Name() string

	// Foreground and Background return the escape that switches the
	// current color. They are only called with non-empty colors.
	Foreground(color string) string
	Background(color string) string

	// Glyph returns the character drawn for a segment end.
	Glyph(g Glyph) string

	// Placeholder references positional capture slot n (1-based).
	Placeholder(slot int) string

	// CaptureGuard builds a condition that holds when slot n is non-empty.
	CaptureGuard(slot int) string

	// TestGuard builds a condition from a numeric argument and the test
	// text following it.
	TestGuard(digits, test string) string

	// Conditional emits whenTrue or whenFalse depending on cond at prompt
	// time. whenFalse may be empty.
	Conditional(cond, whenTrue, whenFalse string) string

	// WriteScript writes the statements that install the prompt.
	WriteScript(w io.Writer, p *Prompt) error
}

// Glyphs holds the characters drawn for segment ends.
type Glyphs struct {
	Right string
	Left  string
}

// DefaultGlyphs are the powerline arrow characters.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Right: "\ue0b0",
		Left:  "\ue0b2",
	}
}

func (g Glyphs) get(kind Glyph) string {
	switch kind {
	case GlyphRight:
		return g.Right
	case GlyphLeft:
		return g.Left
	default:
		return ""
	}
}

// DialectByName returns the dialect registered under name.
func DialectByName(name string, glyphs Glyphs) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "zsh":
		return NewZsh(glyphs), nil
	case "ansi":
		return NewANSI(glyphs), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q (want zsh or ansi)", name)
	}
}
