package cmd

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/inlay/internal/model"
)

// parseSelector builds a selector from --variation and --at flag values.
// location is "file:line" or a bare file. Only an all-digit suffix after the
// last colon is read as a line, so paths holding colons stay intact.
func parseSelector(variation, location string) (m.Selector, error) {
	sel := m.Selector{Variation: variation}

	if location == "" {
		return sel, nil
	}

	idx := strings.LastIndex(location, ":")
	if idx < 0 || !isDigits(location[idx+1:]) {
		sel.Path = m.Path(location)
		return sel, nil
	}

	line, err := strconv.Atoi(location[idx+1:])
	if err != nil || line <= 0 {
		return m.Selector{}, fmt.Errorf("invalid location %q: line must be a positive number", location)
	}

	if idx == 0 {
		return m.Selector{}, fmt.Errorf("invalid location %q: missing file", location)
	}

	sel.Path = m.Path(location[:idx])
	sel.Line = line

	return sel, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
