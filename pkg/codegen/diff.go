package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrStale is returned in check mode when generated files on disk do not match what would be generated
var ErrStale = errors.New("generated files are out of date")

// Diff returns a line diff from the content on disk to the expected content, listing changed lines only.
// The result is empty when both are equal.
func Diff(path string, actual, expected []byte) string {
	if string(actual) == string(expected) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(actual), string(expected))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s (on disk)\n+++ %s (expected)\n", path, path)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
