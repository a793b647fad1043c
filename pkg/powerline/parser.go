package powerline

import (
	"fmt"
	"strings"
)

// ParseDescriptor parses one descriptor into its chained segments.
// Parsing is all-or-nothing: the first malformed part fails the whole
// descriptor.
func ParseDescriptor(descriptor string) ([]Segment, error) {
	segments, _, err := parseDescriptor(descriptor)
	return segments, err
}

// parseDescriptor is ParseDescriptor that also returns the byte offset at
// which every segment value starts in descriptor.
func parseDescriptor(descriptor string) ([]Segment, []int, error) {
	parts, offsets, err := split(descriptor)
	if err != nil {
		return nil, nil, err
	}

	segments := make([]Segment, 0, len(parts))
	valueOffsets := make([]int, 0, len(parts))
	for i, part := range parts {
		segment, valueStart, err := parsePart(part)
		if err != nil {
			return nil, nil, withBase(err, descriptor, offsets[i])
		}
		segments = append(segments, segment)
		valueOffsets = append(valueOffsets, offsets[i]+valueStart)
	}

	return segments, valueOffsets, nil
}

// ParsePart parses a single raw part as produced by Split:
//
//	[(fg[;bg])]value[<|>|]
func ParsePart(part string) (Segment, error) {
	segment, _, err := parsePart(part)
	return segment, err
}

func parsePart(part string) (Segment, int, error) {
	var segment Segment
	pos := 0

	if strings.HasPrefix(part, "(") {
		closePos := strings.IndexByte(part, ')')
		if closePos == -1 {
			return Segment{}, 0, newParseError(ErrUnterminatedColorGroup, part, 0, "missing ')'")
		}
		segment.Foreground, segment.Background = parseColorGroup(part[1:closePos])
		pos = closePos + 1
	}

	rest := part[pos:]
	if rest == "" {
		return Segment{}, 0, newParseError(ErrEmptySegment, part, pos, "no value after color group")
	}

	last := len(rest) - 1
	if isGlyphChar(rest[last]) && !isEscapedAt(rest, last) {
		segment.End = glyphFromChar(rest[last])
		rest = rest[:last]
	}
	segment.Value = unescapeGlyphs(rest)

	return segment, pos, nil
}

// parseColorGroup splits the text inside a color group on its first ';'.
func parseColorGroup(group string) (foreground, background string) {
	before, after, found := strings.Cut(group, ";")
	if !found {
		return group, ""
	}
	return before, after
}

func glyphFromChar(c byte) Glyph {
	switch c {
	case '<':
		return GlyphLeft
	case '>':
		return GlyphRight
	default:
		return GlyphNone
	}
}

// String returns a human-readable name for the glyph kind
func (g Glyph) String() string {
	switch g {
	case GlyphNone:
		return "None"
	case GlyphRight:
		return "Right"
	case GlyphLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// String returns a string representation of a segment
func (s Segment) String() string {
	return fmt.Sprintf("Segment(fg=%q bg=%q value=%q end=%s)", s.Foreground, s.Background, s.Value, s.End)
}
