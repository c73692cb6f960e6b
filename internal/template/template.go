// Package template expands shell command templates. Placeholders are
// balanced top-level {name} groups; braces may nest inside a group so
// quoted shell snippets with literal braces survive expansion.
package template

import (
	"fmt"
	"strings"
)

// Error reports a malformed template. Unbalanced braces are the only
// parse failure: an unknown placeholder name degrades to an empty
// substitution instead.
type Error struct {
	Template string
	Pos      int
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("template %q: %s at offset %d", e.Template, e.Reason, e.Pos)
}

// Expand substitutes every top-level placeholder in tmpl. A placeholder
// whose name appears in args expands to the configured flag prefix
// followed by the quoted value; all other placeholders expand to the
// empty string.
func Expand(tmpl string, argFlags, args map[string]string) (string, error) {
	spans, err := scan(tmpl)
	if err != nil {
		return "", err
	}
	if len(spans) == 0 {
		return tmpl, nil
	}

	var out strings.Builder
	out.Grow(len(tmpl))
	last := 0
	for _, span := range spans {
		out.WriteString(tmpl[last:span.start])
		name := tmpl[span.start+1 : span.end]
		if value, ok := args[name]; ok {
			out.WriteString(argFlags[name])
			out.WriteString(quote(value))
		}
		last = span.end + 1
	}
	out.WriteString(tmpl[last:])
	return out.String(), nil
}

// Placeholders returns the names of all top-level placeholder groups in
// order of appearance.
func Placeholders(tmpl string) ([]string, error) {
	spans, err := scan(tmpl)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, tmpl[span.start+1:span.end])
	}
	return names, nil
}

type span struct {
	start int // index of the opening brace
	end   int // index of the matching closing brace
}

// scan locates balanced top-level brace groups. Depth tracking permits
// nested braces inside a group; only the outermost pair delimits the
// placeholder.
func scan(tmpl string) ([]span, error) {
	var spans []span
	depth := 0
	start := -1
	for i := 0; i < len(tmpl); i++ {
		switch tmpl[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				return nil, &Error{Template: tmpl, Pos: i, Reason: "unmatched closing brace"}
			}
			depth--
			if depth == 0 {
				spans = append(spans, span{start: start, end: i})
			}
		}
	}
	if depth != 0 {
		return nil, &Error{Template: tmpl, Pos: start, Reason: "unmatched opening brace"}
	}
	return spans, nil
}

// quote wraps a value in double quotes for the shell. Embedded double
// quotes are escaped with a backslash so a value cannot terminate its
// own quoting.
func quote(value string) string {
	if strings.Contains(value, `"`) {
		value = strings.ReplaceAll(value, `"`, `\"`)
	}
	return `"` + value + `"`
}
