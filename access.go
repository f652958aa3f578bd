package vector

// Index returns the element at i without checking it against Len.
// The caller must ensure 0 <= i < Len().
func (v *Vector[T]) Index(i int) T {
	return v.buf[i]
}

// Ref returns a pointer to the element at i without checking it against
// Len. The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf[i]
}

// Set stores x at i without checking it against Len.
func (v *Vector[T]) Set(i int, x T) {
	v.buf[i] = x
}

// At returns the element at i, or a *RangeError if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.AtRef(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef returns a pointer to the element at i, or a *RangeError if i is
// not in [0, Len()).
func (v *Vector[T]) AtRef(i int) (*T, error) {
	v.live()
	if i < 0 || i >= v.size {
		return nil, &RangeError{Index: i, Size: v.size}
	}
	return &v.buf[i], nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	return v.buf[0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	return v.buf[v.size-1]
}

// Data returns the live elements. The slice aliases the vector's storage
// and must not be used after the next reallocation.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}
