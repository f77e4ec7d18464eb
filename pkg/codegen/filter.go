package codegen

import (
	"github.com/becheran/wildmatch-go"
)

// FilterTypes keeps the structs whose names match one of the wildcard patterns ("*" and "?"). Without patterns
// every struct is kept.
func FilterTypes(structs []*StructInfo, patterns []string) []*StructInfo {
	if len(patterns) == 0 {
		return structs
	}

	matchers := make([]*wildmatch.WildMatch, 0, len(patterns))
	for _, p := range patterns {
		matchers = append(matchers, wildmatch.NewWildMatch(p))
	}

	var out []*StructInfo
	for _, s := range structs {
		for _, m := range matchers {
			if m.IsMatch(s.Name) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
