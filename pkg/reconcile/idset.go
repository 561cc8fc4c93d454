package reconcile

// toSet builds a membership set from an id slice. Go has no built-in set
// type, so every reconcile difference is computed over map[int64]struct{}.
func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// difference returns the ids present in a but absent from b.
func difference(a, b map[int64]struct{}) []int64 {
	out := make([]int64, 0)
	for id := range a {
		if _, found := b[id]; !found {
			out = append(out, id)
		}
	}
	return out
}
