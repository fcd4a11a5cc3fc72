package repository

// keyArgs converts a set of integer keys to predicate arguments, dropping
// duplicates while keeping first-seen order.
func keyArgs(ids []int) []any {
	seen := make(map[int]struct{}, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		args = append(args, id)
	}
	return args
}
