package powerline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	right = "\ue0b0"
	left  = "\ue0b2"
)

func renderDescriptor(t *testing.T, r *Renderer, descriptor string) string {
	t.Helper()
	segments, err := ParseDescriptor(descriptor)
	require.NoError(t, err)
	out, err := r.RenderAll(segments)
	require.NoError(t, err)
	return out
}

func newZshRenderer(separator string) *Renderer {
	return NewRenderer(Options{Separator: separator, Dialect: NewZsh(DefaultGlyphs())})
}

func TestRenderSingleSegment(t *testing.T) {
	out := renderDescriptor(t, newZshRenderer(" "), "(red;blue)text>")
	assert.Equal(t, "%K{blue}%F{red} text %F{blue}", out)
}

func TestRenderBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   string
	}{
		{
			name:       "right arrow paints glyph in old background",
			descriptor: "(red;blue)a>(white;green)b",
			expected:   "%K{blue}%F{red} a %F{blue}%K{green}" + right + "%F{white} b %F{green}",
		},
		{
			name:       "left arrow paints glyph in new background",
			descriptor: "(red;blue)a<(white;green)b",
			expected:   "%K{blue}%F{red} a %F{blue}%F{green}" + left + "%K{green}%F{white} b %F{green}",
		},
		{
			name:       "no glyph",
			descriptor: "(red;blue)a|(white;green)b",
			expected:   "%K{blue}%F{red} a %F{blue}%K{green}%F{white} b %F{green}",
		},
		{
			name:       "inherited colors emit nothing",
			descriptor: "a>b",
			expected:   " a " + right + " b ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderDescriptor(t, newZshRenderer(" "), tt.descriptor)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderColorChangesAreIdempotent(t *testing.T) {
	t.Run("background", func(t *testing.T) {
		out := renderDescriptor(t, newZshRenderer(" "), "(red;blue)a|(red;blue)b")
		assert.Equal(t, 1, strings.Count(out, "%K{blue}"), out)
	})

	t.Run("foreground", func(t *testing.T) {
		out := renderDescriptor(t, newZshRenderer(" "), "(red)a|(red)b")
		assert.Equal(t, 1, strings.Count(out, "%F{red}"), out)
		assert.Equal(t, "%F{red} a  b ", out)
	})
}

func TestRenderNewlineSegment(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   string
	}{
		{"bare", `\n`, "\n"},
		{"colored", `(red;blue)\n`, "%K{blue}%F{red}\n%F{blue}"},
		{"conditional collapses to newline", `?0?;\n;x`, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderDescriptor(t, newZshRenderer("SEP"), tt.descriptor)
			assert.Equal(t, tt.expected, out)
			assert.NotContains(t, out, "SEP")
		})
	}
}

func TestRenderConditionals(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   string
	}{
		{
			name:       "two branches",
			descriptor: "?0;a;b",
			expected:   " %0(.a.b) ",
		},
		{
			name:       "true branch only wraps the whole segment",
			descriptor: "(red;blue)?1?;ok",
			expected:   "%1(?.%K{blue}%F{red} ok %F{blue}.)",
		},
		{
			name:       "empty false branch behaves like no false branch",
			descriptor: "?0?;ok;",
			expected:   "%0(?. ok .)",
		},
		{
			name:       "guarded capture with else",
			descriptor: "?none$(git branch)",
			expected:   " %1(v.%1v.none) ",
		},
		{
			name:       "guarded capture without else",
			descriptor: "?$(git branch)",
			expected:   "%1(v. %1v .)",
		},
		{
			name:       "branch escapes are not expanded in else",
			descriptor: `?0?;a;b\n`,
			expected:   ` %0(?.a.b\n) `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderDescriptor(t, newZshRenderer(" "), tt.descriptor)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderTwoBranchConditionalUsesOneTest(t *testing.T) {
	out := renderDescriptor(t, newZshRenderer(" "), "?0;a;b")
	assert.Equal(t, 1, strings.Count(out, "%0("))

	expr, err := ParseExpr("?0;a;b")
	require.NoError(t, err)
	value := newZshRenderer(" ").resolve(expr)
	assert.Equal(t, ResolvedValue{
		Rendered:     "a",
		Condition:    "0(",
		HasCondition: true,
		Else:         "b",
		HasElse:      true,
	}, value)
}

func TestRenderCaptureSlotsFollowEncounterOrder(t *testing.T) {
	r := newZshRenderer(" ")

	first := renderDescriptor(t, r, "$(git branch)>")
	second := renderDescriptor(t, r, "?none$(date)|?1x;$(whoami);y")

	assert.Equal(t, " %1v ", first)
	assert.Contains(t, second, "%2v")
	assert.Contains(t, second, "%3v")
	assert.Equal(t, []string{"$(git branch)", "$(date)", "$(whoami)"}, r.Captures())
}

func TestRenderStateCarriesAcrossCalls(t *testing.T) {
	r := newZshRenderer(" ")

	renderDescriptor(t, r, "(red;blue)a>")
	out := renderDescriptor(t, r, "(red;blue)b")

	// Background is still blue, so only the glyph and the foreground reset
	// are emitted.
	assert.Equal(t, right+"%F{red} b %F{blue}", out)
}

func TestRenderInvalidExpression(t *testing.T) {
	r := newZshRenderer(" ")
	_, err := r.Render(Segment{Value: "?x;a"})
	assert.ErrorIs(t, err, ErrMalformedCondition)
}

func TestRenderDefaultsToZsh(t *testing.T) {
	r := NewRenderer(Options{})
	out, err := r.Render(Segment{Foreground: "red", Value: "x"})
	require.NoError(t, err)
	assert.Equal(t, "%F{red}x", out)
}
