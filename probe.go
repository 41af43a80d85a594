package urplit

import "strings"

// FindTexture scans candidates for the first texture whose name equals
// prefix+alias, case-insensitively. Matching is exact on the whole name,
// never a substring test. Aliases are tried in priority order; within one
// alias, candidates keep their enumeration order, so an earlier alias wins
// over a later one even when both could match.
func FindTexture(candidates []TextureRef, aliases []string, prefix string) (TextureRef, bool) {
	for _, alias := range aliases {
		want := prefix + alias
		for _, cand := range candidates {
			if strings.EqualFold(cand.Name, want) {
				return cand, true
			}
		}
	}

	return TextureRef{}, false
}
