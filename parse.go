package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: bad value %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("bad value %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseLine splits a "key: value" line. ok is false for lines without a
// colon, which carry no metric and are not an error.
func ParseLine(line string, strip StripMode) (key string, value float64, ok bool, err error) {
	var parts []string
	if strip == StripTrim {
		parts = strings.Split(line, ":")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
	} else {
		parts = strings.Split(stripSpaces(line), ":")
	}
	if len(parts) < 2 {
		return "", 0, false, nil
	}
	// whatever follows the second colon is dropped
	value, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", 0, false, &ParseError{Text: parts[1], Err: err}
	}
	return parts[0], value, true, nil
}
