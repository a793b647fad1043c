// Package preview shows a compiled prompt in the current terminal together
// with a short report of its size and capture slots.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	ansi "github.com/leaanthony/go-ansi-parser"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/Hanaasagi/powerprompt/pkg/powerline"
)

// ErrNotANSI is returned when previewing a prompt compiled for a shell
// dialect, whose escapes a terminal cannot draw directly.
var ErrNotANSI = errors.New("preview needs a prompt compiled with the ansi dialect")

var (
	labelStyle = color.New(color.Bold, color.FgHiWhite)
	valueStyle = color.New(color.FgHiCyan)
	slotStyle  = color.New(color.FgHiGreen)
)

// Report describes what a prompt looks like once drawn.
type Report struct {
	Rendered string   // Prompt with escapes, as the terminal receives it
	Visible  string   // Prompt with escapes removed
	Lines    int      // Number of terminal lines the prompt spans
	Width    int      // Display width of the widest line
	Captures []string // Capture expressions, slot 1 first
}

// Build renders prompt through its dialect and measures the result.
// The prompt must be compiled with the ANSI dialect.
func Build(prompt *powerline.Prompt) (*Report, error) {
	if _, ok := prompt.Dialect().(*powerline.ANSI); !ok {
		name := "none"
		if d := prompt.Dialect(); d != nil {
			name = d.Name()
		}
		return nil, fmt.Errorf("%w: got %s", ErrNotANSI, name)
	}

	var buf bytes.Buffer
	if err := prompt.WriteScript(&buf); err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	rendered := strings.TrimSuffix(buf.String(), "\n")
	visible, err := ansi.Cleanse(rendered)
	if err != nil {
		return nil, fmt.Errorf("stripping escape codes: %w", err)
	}

	lines := strings.Split(visible, "\n")
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	return &Report{
		Rendered: rendered,
		Visible:  visible,
		Lines:    len(lines),
		Width:    width,
		Captures: prompt.Captures,
	}, nil
}

// Write prints the prompt followed by the report. Escape codes are kept only
// when colorize is set.
func (r *Report) Write(w io.Writer, colorize bool) error {
	var buf bytes.Buffer

	if colorize {
		buf.WriteString(r.Rendered)
	} else {
		buf.WriteString(r.Visible)
	}
	buf.WriteString("\n\n")

	labelStyle.Fprint(&buf, "Width:")
	valueStyle.Fprintf(&buf, " %d", r.Width)
	buf.WriteByte('\n')
	labelStyle.Fprint(&buf, "Lines:")
	valueStyle.Fprintf(&buf, " %d", r.Lines)
	buf.WriteByte('\n')

	if len(r.Captures) > 0 {
		labelStyle.Fprint(&buf, "Captures:")
		buf.WriteByte('\n')
		for i, capture := range r.Captures {
			slotStyle.Fprintf(&buf, "  {%d}", i+1)
			fmt.Fprintf(&buf, " %s\n", capture)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// IsTerminal reports whether w is a terminal that can show colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
