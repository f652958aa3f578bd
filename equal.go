package vector

import "golang.org/x/exp/slices"

// Equal reports whether a and b hold the same elements in the same order.
// It stops at the first length or element mismatch.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares elements with eq.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.Data(), other.Data(), eq)
}

// IndexOf returns the index of the first element equal to x, or -1.
func IndexOf[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.Data(), x)
}

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vector[T], x T) bool {
	return slices.Contains(v.Data(), x)
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}
