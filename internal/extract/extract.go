package extract

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNoObject is returned when the text contains no JSON object at all.
var ErrNoObject = errors.New("no JSON object found")

// ErrIncomplete is returned when an object start was found but no complete,
// parseable object could be recovered from it.
var ErrIncomplete = errors.New("unable to extract complete JSON object")

// Object locates exactly one complete JSON object in arbitrary model output
// and returns it as a string. Recovery is layered, first success wins:
//
//  1. strip a surrounding ``` fence (and a leading "json" tag) if present
//  2. parse the whole remaining text directly
//  3. scan from the first "{" with depth-counted brace matching, ignoring
//     braces inside string literals, and parse the matched span; trailing
//     prose after the object is ignored
//  4. if the matched span is malformed, run jsonrepair over it and parse
//     the repaired text
//
// Repair applies only to a complete brace-matched span (trailing commas,
// single quotes and the like). A completion whose depth never returns to
// zero was cut off mid-generation; inventing closing braces for it would
// hand the caller a silently truncated graph, so it fails instead.
func Object(text string) (string, error) {
	stripped := stripFence(strings.TrimSpace(text))

	// Fast path.
	if json.Valid([]byte(stripped)) {
		return stripped, nil
	}

	start := strings.IndexByte(stripped, '{')
	if start < 0 {
		return "", ErrNoObject
	}

	candidate, ok := scanObject(stripped[start:])
	if !ok {
		return "", ErrIncomplete
	}
	if json.Valid([]byte(candidate)) {
		return candidate, nil
	}
	if repaired, err := jsonrepair.JSONRepair(candidate); err == nil && json.Valid([]byte(repaired)) {
		return repaired, nil
	}
	return "", ErrIncomplete
}

// stripFence removes a surrounding triple-backtick fence, plus the literal
// "json" tag immediately after the opening fence if present.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.Trim(s, "`")
	if strings.HasPrefix(s, "json") {
		s = s[len("json"):]
	}
	return strings.TrimSpace(s)
}

// scanObject walks s, which must start at a "{", counting brace depth until
// it returns to zero and reports the matched span. Braces inside string
// literals do not move the counter; backslash escapes inside strings are
// honored so an escaped quote does not end the literal.
func scanObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
