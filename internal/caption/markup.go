package caption

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BreakMarker replaces every newline in rendered markup.
const BreakMarker = "<br/>"

// Renderer converts cues to inline markup.
//
// Span offsets count UTF-16 code units, the unit used by the systems that
// produce caption tracks. Bytes that are not valid UTF-8 pass through
// unchanged and count as one unit each. Tags are emitted strictly in the order the spans are
// listed, so overlapping spans come out interleaved rather than nested.
type Renderer struct {
	// SkipUnknown drops spans with an unrecognized style instead of failing.
	SkipUnknown bool
}

// Render converts c with a strict renderer.
func Render(c Cue) (string, error) {
	return Renderer{}.Render(c)
}

type spanTags struct {
	start, end  int
	open, close string
}

// Render returns the markup for c: style tags inserted at span boundaries,
// text escaped, newlines replaced by BreakMarker.
func (r Renderer) Render(c Cue) (string, error) {
	if len(c.InlineStyles) == 0 {
		return breakLines(escapeText(c.Content)), nil
	}

	tags, err := r.resolve(c.InlineStyles)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(c.Content) + len(tags)*8)

	pos := 0
	for i := 0; i < len(c.Content); {
		ch, size := utf8.DecodeRuneInString(c.Content[i:])
		width := utf16Len(ch)
		writeTagsAt(&sb, tags, pos)
		writeEscaped(&sb, ch, c.Content[i:i+size])
		// a boundary inside a surrogate pair lands after the whole character
		for k := 1; k < width; k++ {
			writeTagsAt(&sb, tags, pos+k)
		}
		pos += width
		i += size
	}
	// closing position, one past the last code unit
	writeTagsAt(&sb, tags, pos)

	return breakLines(sb.String()), nil
}

func (r Renderer) resolve(spans []StyleSpan) ([]spanTags, error) {
	tags := make([]spanTags, 0, len(spans))
	for i, s := range spans {
		open, close, err := s.Style.Tags()
		if err != nil {
			if r.SkipUnknown {
				continue
			}
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		tags = append(tags, spanTags{
			start: s.Offset,
			end:   s.End(),
			open:  open,
			close: close,
		})
	}
	return tags, nil
}

// opening wins when a span starts and ends at the same position
func writeTagsAt(sb *strings.Builder, tags []spanTags, pos int) {
	for _, t := range tags {
		if pos == t.start {
			sb.WriteString(t.open)
		} else if pos == t.end {
			sb.WriteString(t.close)
		}
	}
}

// raw is the source bytes of ch, written as is when ch needs no escaping
func writeEscaped(sb *strings.Builder, ch rune, raw string) {
	switch ch {
	case '&':
		sb.WriteString("&amp;")
	case '<':
		sb.WriteString("&lt;")
	case '>':
		sb.WriteString("&gt;")
	case '"':
		sb.WriteString("&#34;")
	case '\'':
		sb.WriteString("&#39;")
	default:
		sb.WriteString(raw)
	}
}

func escapeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		ch, size := utf8.DecodeRuneInString(s[i:])
		writeEscaped(&sb, ch, s[i:i+size])
		i += size
	}
	return sb.String()
}

func breakLines(s string) string {
	return strings.ReplaceAll(s, "\n", BreakMarker)
}

// utf16Len is the number of UTF-16 code units needed for ch
func utf16Len(ch rune) int {
	if ch >= 0x10000 {
		return 2
	}
	return 1
}

// ContentLength returns the length of s in UTF-16 code units, the unit span
// offsets are expressed in.
func ContentLength(s string) int {
	n := 0
	for _, ch := range s {
		n += utf16Len(ch)
	}
	return n
}
