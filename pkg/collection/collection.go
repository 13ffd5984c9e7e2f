package collection

// Fill builds a slice of n items, each one produced by f.
func Fill[T any](n int, f func(k int) T) []T {
	s := make([]T, 0, n)
	for k := 0; k < n; k++ {
		s = append(s, f(k))
	}
	return s
}

// Each can be used to iterate over the slice
func Each[T any](s []T, f func(k int, i T)) {
	for k, item := range s {
		f(k, item)
	}
}

// Map builds a new slice from the result of f on every item
func Map[T, R any](s []T, f func(k int, i T) R) []R {
	result := make([]R, 0, len(s))
	for k, item := range s {
		result = append(result, f(k, item))
	}
	return result
}

// RemoveAt cuts the item at index k out of s, reusing the backing array.
// An index outside of s leaves it untouched.
func RemoveAt[T any](s []T, k int) []T {
	if k < 0 || k >= len(s) {
		return s
	}
	return append(s[:k], s[k+1:]...)
}

// InsertAt puts item at index k and shifts the tail right.
// An index past the end appends.
func InsertAt[T any](s []T, k int, item T) []T {
	if k < 0 {
		k = 0
	}
	if k >= len(s) {
		return append(s, item)
	}
	s = append(s, item)
	copy(s[k+1:], s[k:])
	s[k] = item
	return s
}

// Clone copies s into a fresh backing array.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
