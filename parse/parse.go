// Package parse turns free-form user input into validated pitch classes.
// Range validation lives here: the pcset core deliberately accepts any
// integer, so anything that should be rejected must be rejected before a
// set is built.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var forteNumberRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)

// IsForteNumber reports whether the input looks like a Forte number label
// such as "3-11". It does not check that the label exists in the catalog.
func IsForteNumber(input string) bool {
	return forteNumberRe.MatchString(strings.TrimSpace(input))
}

// Set parses space- or comma-separated integers, optionally wrapped in
// [], {} or (). Every value must be in 0-11; anything else is an error.
// An empty input yields an empty slice.
func Set(input string) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.Trim(trimmed, "[](){}")

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	pcs := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("not a pitch class: %q", field)
		}
		if v < 0 || v > 11 {
			return nil, fmt.Errorf("pitch class out of range: %d", v)
		}
		pcs = append(pcs, v)
	}
	return pcs, nil
}
