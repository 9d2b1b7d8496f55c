package grid

// Reorder returns a copy of s with the element at from moved to to,
// shifting the elements in between by one position. Invalid indices make
// the operation a no-op: the input slice is returned unchanged. Callers
// resolve IDs to indices first and abort on -1.
func Reorder[T any](s []T, from, to int) []T {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return s
	}
	if from == to {
		return s
	}
	out := make([]T, 0, len(s))
	out = append(out, s[:from]...)
	out = append(out, s[from+1:]...)
	moved := s[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}
