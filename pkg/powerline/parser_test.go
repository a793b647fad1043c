package powerline

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   []string
	}{
		{
			name:       "single part without glyph",
			descriptor: "%n",
			expected:   []string{"%n"},
		},
		{
			name:       "single part with glyph",
			descriptor: "%n>",
			expected:   []string{"%n>"},
		},
		{
			name:       "chained parts",
			descriptor: "a>b<c|d",
			expected:   []string{"a>", "b<", "c|", "d"},
		},
		{
			name:       "consecutive glyphs",
			descriptor: ">>",
			expected:   []string{">", ">"},
		},
		{
			name:       "escaped glyph does not split",
			descriptor: `$(git branch \| head -1)>%~`,
			expected:   []string{`$(git branch \| head -1)>`, "%~"},
		},
		{
			name:       "literal backslash before glyph splits",
			descriptor: `a\\>b`,
			expected:   []string{`a\\>`, "b"},
		},
		{
			name:       "escaped backslash then escaped glyph",
			descriptor: `a\\\>b`,
			expected:   []string{`a\\\>b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Split(tt.descriptor)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if !reflect.DeepEqual(parts, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, parts)
			}
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	_, err := Split("")
	if !errors.Is(err, ErrMalformedDescriptor) {
		t.Fatalf("Expected ErrMalformedDescriptor, got %v", err)
	}
}

func TestParsePart(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		expected Segment
	}{
		{
			name:     "plain value",
			part:     "%n",
			expected: Segment{Value: "%n", End: GlyphNone},
		},
		{
			name:     "color group with both colors",
			part:     "(red;blue)text>",
			expected: Segment{Foreground: "red", Background: "blue", Value: "text", End: GlyphRight},
		},
		{
			name:     "foreground only",
			part:     "(red)text<",
			expected: Segment{Foreground: "red", Value: "text", End: GlyphLeft},
		},
		{
			name:     "background only",
			part:     "(;blue)text|",
			expected: Segment{Background: "blue", Value: "text", End: GlyphNone},
		},
		{
			name:     "glyph only",
			part:     "(;green)>",
			expected: Segment{Background: "green", Value: "", End: GlyphRight},
		},
		{
			name:     "escaped trailing glyph stays in value",
			part:     `a\>`,
			expected: Segment{Value: "a>", End: GlyphNone},
		},
		{
			name:     "value ending in a backslash keeps its glyph",
			part:     `a\\>`,
			expected: Segment{Value: `a\\`, End: GlyphRight},
		},
		{
			name:     "escaped backslash before escaped glyph",
			part:     `a\\\>`,
			expected: Segment{Value: `a\\>`, End: GlyphNone},
		},
		{
			name:     "escaped glyph inside value",
			part:     `$(ls \| wc -l)>`,
			expected: Segment{Value: "$(ls | wc -l)", End: GlyphRight},
		},
		{
			name:     "second semicolon belongs to background",
			part:     "(a;b;c)x",
			expected: Segment{Foreground: "a", Background: "b;c", Value: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment, err := ParsePart(tt.part)
			if err != nil {
				t.Fatalf("ParsePart failed: %v", err)
			}
			if segment != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, segment)
			}
		})
	}
}

func TestParseDescriptorPlain(t *testing.T) {
	for _, descriptor := range []string{"%n", "hello world", "$HOME", "?0;a;b"} {
		segments, err := ParseDescriptor(descriptor)
		if err != nil {
			t.Fatalf("ParseDescriptor(%q) failed: %v", descriptor, err)
		}
		if len(segments) != 1 {
			t.Fatalf("Expected 1 segment for %q, got %d", descriptor, len(segments))
		}
		s := segments[0]
		if s.Foreground != "" || s.Background != "" || s.End != GlyphNone {
			t.Errorf("Expected bare segment for %q, got %s", descriptor, s)
		}
	}
}

func TestParseDescriptorChained(t *testing.T) {
	segments, err := ParseDescriptor("(white;blue)%n>(black;white)%~<(red)x")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}

	expected := []Segment{
		{Foreground: "white", Background: "blue", Value: "%n", End: GlyphRight},
		{Foreground: "black", Background: "white", Value: "%~", End: GlyphLeft},
		{Foreground: "red", Value: "x", End: GlyphNone},
	}
	if !reflect.DeepEqual(segments, expected) {
		t.Errorf("Expected %v, got %v", expected, segments)
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		kind       error
		offset     int
	}{
		{"empty", "", ErrMalformedDescriptor, 0},
		{"unterminated color group", "(unterminated", ErrUnterminatedColorGroup, 0},
		{"unterminated in later part", "a>(red", ErrUnterminatedColorGroup, 2},
		{"color group without value", "(red)", ErrEmptySegment, 5},
		{"later color group without value", "a>(red)", ErrEmptySegment, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptor(tt.descriptor)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Expected %v, got %v", tt.kind, err)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if pe.Descriptor != tt.descriptor {
				t.Errorf("Expected descriptor %q, got %q", tt.descriptor, pe.Descriptor)
			}
			if pe.Offset != tt.offset {
				t.Errorf("Expected offset %d, got %d", tt.offset, pe.Offset)
			}
		})
	}
}
