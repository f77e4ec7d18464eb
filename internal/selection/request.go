package selection

import (
	"fmt"
	"strings"
)

// Request describes how to narrow a set of tagged values: start from the values matching Base (or all
// values when Base is empty), narrow to Select, drop Remove, then add back Add from the full set.
type Request struct {
	Base   []string
	Select []string
	Remove []string
	Add    []string
}

// ParseRequest parses a comma separated selection expression. Plain names select, names prefixed
// with "+" are added and names prefixed with "-" are removed. When no plain names are given the
// selection starts from the provided default tags.
func ParseRequest(expr string, defaults ...string) Request {
	var r Request
	for _, part := range strings.Split(expr, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch {
		case part == "":
			continue
		case strings.HasPrefix(part, "+"):
			r.Add = appendName(r.Add, part[1:])
		case strings.HasPrefix(part, "-"):
			r.Remove = appendName(r.Remove, part[1:])
		default:
			r.Select = appendName(r.Select, part)
		}
	}
	if len(r.Select) == 0 {
		r.Base = defaults
	}
	return r
}

func appendName(names []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return names
	}
	return append(names, name)
}

// Names returns every tag referenced by the request
func (r Request) Names() []string {
	var out []string
	out = append(out, r.Base...)
	out = append(out, r.Select...)
	out = append(out, r.Remove...)
	out = append(out, r.Add...)
	return out
}

// Apply runs the request against all values, returning an error if the request refers to a tag none
// of the values carry
func Apply[T any](all Values[T], r Request) (Values[T], error) {
	for _, name := range r.Names() {
		if !all.HasTag(name) {
			return nil, fmt.Errorf("unknown selection: %q", name)
		}
	}
	values := all
	if len(r.Base) > 0 {
		values = values.Select(r.Base...)
	}
	if len(r.Select) > 0 {
		values = values.Select(r.Select...)
	}
	if len(r.Remove) > 0 {
		values = values.Remove(r.Remove...)
	}
	if len(r.Add) > 0 {
		values = values.Join(all.Select(r.Add...)...)
	}
	return values, nil
}
