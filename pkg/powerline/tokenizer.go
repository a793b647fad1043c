package powerline

import "strings"

// isGlyphChar reports whether c terminates a segment.
func isGlyphChar(c byte) bool {
	return c == '<' || c == '>' || c == '|'
}

// isEscapedAt reports whether the byte at pos is preceded by an escaping
// backslash. Only an odd run of backslashes escapes: `\\>` is a literal
// backslash followed by a glyph.
func isEscapedAt(s string, pos int) bool {
	run := 0
	for i := pos - 1; i >= 0 && s[i] == '\\'; i-- {
		run++
	}
	return run%2 == 1
}

// Split breaks a descriptor into raw parts. Each part keeps its terminating
// glyph character; only the last part may lack one.
//
// A backslash before a glyph character escapes it, so `\>` does not end the
// part. The escape is kept in the raw part and removed by ParsePart.
func Split(descriptor string) ([]string, error) {
	parts, _, err := split(descriptor)
	return parts, err
}

// split is Split that also returns the byte offset at which every part
// starts in descriptor.
func split(descriptor string) ([]string, []int, error) {
	if descriptor == "" {
		return nil, nil, newParseError(ErrMalformedDescriptor, descriptor, 0, "descriptor is empty")
	}

	var parts []string
	var offsets []int
	start := 0

	for pos := 0; pos < len(descriptor); pos++ {
		if !isGlyphChar(descriptor[pos]) || isEscapedAt(descriptor, pos) {
			continue
		}
		parts = append(parts, descriptor[start:pos+1])
		offsets = append(offsets, start)
		start = pos + 1
	}

	if start < len(descriptor) {
		parts = append(parts, descriptor[start:])
		offsets = append(offsets, start)
	}

	return parts, offsets, nil
}

// unescapeGlyphs turns `\<`, `\>` and `\|` into the bare characters. Other
// backslashes are kept verbatim.
func unescapeGlyphs(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isGlyphChar(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
