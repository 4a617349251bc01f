package syntax

import (
	"strings"
)

// line is one physical line of the input.
type line struct {
	raw     string // full text including the line ending
	indent  string // leading spaces and tabs
	content string // text with surrounding whitespace removed
	trail   string // whitespace between content and the line ending
	eol     string // "\n", "\r\n" or "" for a final unterminated line
	number  int
	offset  int
}

func splitLines(text string) []line {
	var lines []line

	offset := 0
	for number := 1; offset < len(text); number++ {
		end := strings.IndexByte(text[offset:], '\n')

		var raw string
		if end < 0 {
			raw = text[offset:]
		} else {
			raw = text[offset : offset+end+1]
		}

		lines = append(lines, newLine(raw, number, offset))
		offset += len(raw)
	}

	return lines
}

func newLine(raw string, number, offset int) line {
	l := line{raw: raw, number: number, offset: offset}

	body := raw
	switch {
	case strings.HasSuffix(body, "\r\n"):
		l.eol = "\r\n"
	case strings.HasSuffix(body, "\n"):
		l.eol = "\n"
	}

	body = strings.TrimSuffix(body, l.eol)
	trimmedLeft := strings.TrimLeft(body, " \t")
	l.indent = body[:len(body)-len(trimmedLeft)]
	l.content = strings.TrimRight(trimmedLeft, " \t\r")
	l.trail = trimmedLeft[len(l.content):]

	return l
}

// label is the optional name and tag list written inside a header comment.
type label struct {
	name string
	tags []string
}

// parseLabel accepts "name", "[a, b]", "name [a, b]", "[a, b] name" or "".
func parseLabel(inner string) (label, bool) {
	var (
		l       label
		hasTags bool
	)

	s := strings.TrimSpace(inner)
	for s != "" {
		if s[0] == '[' {
			closing := strings.IndexByte(s, ']')
			if hasTags || closing < 0 {
				return label{}, false
			}

			tags, ok := parseTags(s[1:closing])
			if !ok {
				return label{}, false
			}

			l.tags, hasTags = tags, true
			s = strings.TrimSpace(s[closing+1:])

			continue
		}

		n := identifierLength(s)
		if n == 0 || l.name != "" {
			return label{}, false
		}

		l.name = s[:n]
		s = strings.TrimSpace(s[n:])
	}

	return l, true
}

func parseTags(list string) ([]string, bool) {
	if strings.TrimSpace(list) == "" {
		return []string{}, true
	}

	parts := strings.Split(list, ",")
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if !isIdentifier(tag) {
			return nil, false
		}

		tags = append(tags, tag)
	}

	return tags, true
}

func identifierLength(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && ((c >= '0' && c <= '9') || c == '-'):
		default:
			return i
		}
	}

	return len(s)
}

func isIdentifier(s string) bool {
	return s != "" && identifierLength(s) == len(s)
}
