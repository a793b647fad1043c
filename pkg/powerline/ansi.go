package powerline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const ansiReset = "\x1b[0m"

// ANSI renders straight to terminal SGR escapes. It is meant for previewing
// a prompt: captures show as {N} placeholders and conditionals always take
// their true branch.
type ANSI struct {
	glyphs Glyphs
}

// NewANSI returns an ANSI dialect drawing the given glyphs.
func NewANSI(glyphs Glyphs) *ANSI {
	return &ANSI{glyphs: glyphs}
}

func (a *ANSI) Name() string { return "ansi" }

func (a *ANSI) Foreground(color string) string {
	return "\x1b[" + sgrColor(color, false) + "m"
}

func (a *ANSI) Background(color string) string {
	return "\x1b[" + sgrColor(color, true) + "m"
}

func (a *ANSI) Glyph(g Glyph) string {
	return a.glyphs.get(g)
}

func (a *ANSI) Placeholder(slot int) string {
	return fmt.Sprintf("{%d}", slot)
}

func (a *ANSI) CaptureGuard(slot int) string {
	return strconv.Itoa(slot)
}

func (a *ANSI) TestGuard(digits, test string) string {
	return digits + test
}

func (a *ANSI) Conditional(_, whenTrue, _ string) string {
	return whenTrue
}

// WriteScript writes the fragments back to back and resets the colors.
func (a *ANSI) WriteScript(w io.Writer, p *Prompt) error {
	bw := bufio.NewWriter(w)
	for _, fragment := range p.Fragments {
		bw.WriteString(fragment) // nolint: errcheck
	}
	bw.WriteString(ansiReset + "\n") // nolint: errcheck
	return bw.Flush()
}

// ResolveColor maps a color token to a tcell color. Accepted forms are W3C
// color names, #rrggbb and palette indexes 0-255. Unknown tokens resolve to
// tcell.ColorDefault.
func ResolveColor(name string) tcell.Color {
	if n, err := strconv.Atoi(name); err == nil {
		if n >= 0 && n <= 255 {
			return tcell.PaletteColor(n)
		}
		return tcell.ColorDefault
	}
	return tcell.GetColor(strings.ToLower(name))
}

// sgrColor returns the SGR parameters selecting color as foreground or
// background.
func sgrColor(name string, background bool) string {
	c := ResolveColor(name)

	base := 30
	if background {
		base = 40
	}

	switch {
	case c == tcell.ColorDefault:
		return strconv.Itoa(base + 9)
	case c.IsRGB():
		r, g, b := c.RGB()
		return fmt.Sprintf("%d;2;%d;%d;%d", base+8, r, g, b)
	}

	index := int(c & 0xff)
	switch {
	case index < 8:
		return strconv.Itoa(base + index)
	case index < 16:
		return strconv.Itoa(base + 60 + index - 8)
	default:
		return fmt.Sprintf("%d;5;%d", base+8, index)
	}
}
