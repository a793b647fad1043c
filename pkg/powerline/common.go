package powerline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultOptions returns the options used by the command line tool when
// nothing overrides them: single-space padding and the zsh dialect.
func DefaultOptions() Options {
	return Options{
		Separator: " ",
		Dialect:   NewZsh(DefaultGlyphs()),
	}
}

// Compile parses and renders descriptors in order with a single renderer, so
// colors and glyphs flow from one descriptor into the next. It yields one
// fragment per descriptor. The first malformed descriptor aborts the whole
// compilation.
func Compile(descriptors []string, opts Options) (*Prompt, error) {
	renderer := NewRenderer(opts)
	fragments := make([]string, 0, len(descriptors))

	for i, descriptor := range descriptors {
		segments, valueOffsets, err := parseDescriptor(descriptor)
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i+1, err)
		}

		var b strings.Builder
		for j, segment := range segments {
			fragment, err := renderer.Render(segment)
			if err != nil {
				return nil, fmt.Errorf("descriptor %d: %w", i+1, withBase(err, descriptor, valueOffsets[j]))
			}
			b.WriteString(fragment)
		}
		fragments = append(fragments, b.String())

		slog.Debug("Compiled descriptor", "index", i+1, "descriptor", descriptor, "segments", len(segments))
	}

	return &Prompt{
		Fragments: fragments,
		Captures:  renderer.Captures(),
		dialect:   renderer.dialect,
	}, nil
}

// WriteScript writes the prompt in the syntax of the dialect it was compiled
// with.
func (p *Prompt) WriteScript(w io.Writer) error {
	return p.dialect.WriteScript(w, p)
}

// Dialect returns the dialect the prompt was compiled with.
func (p *Prompt) Dialect() Dialect {
	return p.dialect
}

// ValidateDescriptor checks that a descriptor parses, including the value
// expressions of all its segments.
func ValidateDescriptor(descriptor string) error {
	segments, valueOffsets, err := parseDescriptor(descriptor)
	if err != nil {
		return err
	}
	for i, segment := range segments {
		if _, err := ParseExpr(segment.Value); err != nil {
			return withBase(err, descriptor, valueOffsets[i])
		}
	}
	return nil
}
