package powerline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Zsh emits zsh prompt escapes (%F, %K, %(x.true.false), %Nv) and installs
// captures through psvar from a precmd hook.
type Zsh struct {
	glyphs Glyphs

	// InvokedAs is echoed in the leading comment of the script.
	InvokedAs string
}

// NewZsh returns a zsh dialect drawing the given glyphs.
func NewZsh(glyphs Glyphs) *Zsh {
	return &Zsh{glyphs: glyphs, InvokedAs: "powerprompt"}
}

func (z *Zsh) Name() string { return "zsh" }

func (z *Zsh) Foreground(color string) string {
	return "%F{" + color + "}"
}

func (z *Zsh) Background(color string) string {
	return "%K{" + color + "}"
}

func (z *Zsh) Glyph(g Glyph) string {
	return z.glyphs.get(g)
}

func (z *Zsh) Placeholder(slot int) string {
	return fmt.Sprintf("%%%dv", slot)
}

// CaptureGuard uses the psvar test: %(Nv...) is true when psvar[N] is set
// and non-empty.
func (z *Zsh) CaptureGuard(slot int) string {
	return fmt.Sprintf("%d(v", slot)
}

func (z *Zsh) TestGuard(digits, test string) string {
	return digits + "(" + test
}

// Conditional expects cond to already contain the opening parenthesis, as
// produced by CaptureGuard and TestGuard.
func (z *Zsh) Conditional(cond, whenTrue, whenFalse string) string {
	return "%" + cond + "." + whenTrue + "." + whenFalse + ")"
}

// WriteScript writes:
//
//	PROMPT='';
//	PROMPT+=$'<fragment>';
//	precmd() {
//	local a0=<capture>;
//	export psvar=($a0);
//	}
func (z *Zsh) WriteScript(w io.Writer, p *Prompt) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Invoking name: %s\n", z.InvokedAs)
	fmt.Fprintln(bw, "PROMPT='';")
	for _, fragment := range p.Fragments {
		fmt.Fprintf(bw, "PROMPT+=$'%s';\n", fragment)
	}

	fmt.Fprintln(bw, "precmd() {")
	refs := make([]string, 0, len(p.Captures))
	for i, capture := range p.Captures {
		fmt.Fprintf(bw, "local a%d=%s;\n", i, capture)
		refs = append(refs, fmt.Sprintf("$a%d", i))
	}
	fmt.Fprintf(bw, "export psvar=(%s);\n", strings.Join(refs, " "))
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
