package urplit

// InferPrefix finds the base name shared by the largest group of texture
// names. Each name is split at its last underscore; names are grouped by the
// part before it and the prefix of the biggest group wins. When two groups
// tie on size, the group encountered first in input order wins, so the result
// is deterministic for any input ordering.
//
// ok is false when names is empty; callers are expected to have skipped
// missing entries before the call.
func InferPrefix(names []string) (prefix string, ok bool) {
	if len(names) == 0 {
		return "", false
	}

	counts := make(map[string]int, len(names))
	order := make([]string, 0, len(names))
	for _, name := range names {
		p, _ := SplitTextureName(name)
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	best := order[0]
	for _, p := range order[1:] {
		// Strict comparison keeps the earliest group on ties.
		if counts[p] > counts[best] {
			best = p
		}
	}

	return best, true
}
