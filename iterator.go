package vector

import "iter"

// Iterator is a random-access cursor over a vector's slots. Forward
// iterators walk indices upward from Begin to End; reverse iterators walk
// downward from RBegin (the last element) to REnd (one before the first).
//
// Once the vector reallocates or its storage is swapped, moved or
// released, Valid reports false. Inserting or erasing at or before the
// iterator's position shifts the element it refers to.
type Iterator[T any] struct {
	v       *Vector[T]
	pos     int
	reverse bool
	epoch   uint64
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iterAt(0, false)
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iterAt(v.size, false)
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() Iterator[T] {
	return v.iterAt(v.size-1, true)
}

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() Iterator[T] {
	return v.iterAt(-1, true)
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] { return v.Begin().Const() }

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return v.End().Const() }

// CRBegin returns a read-only reverse iterator to the last element.
func (v *Vector[T]) CRBegin() ConstIterator[T] { return v.RBegin().Const() }

// CREnd returns a read-only reverse iterator one before the first element.
func (v *Vector[T]) CREnd() ConstIterator[T] { return v.REnd().Const() }

func (v *Vector[T]) iterAt(pos int, reverse bool) Iterator[T] {
	v.live()
	return Iterator[T]{v: v, pos: pos, reverse: reverse, epoch: v.epoch}
}

// Add returns the iterator n steps further along its direction.
func (it Iterator[T]) Add(n int) Iterator[T] {
	if it.reverse {
		n = -n
	}
	it.pos += n
	return it
}

// Next returns the iterator one step further along its direction.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one step back along its direction.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Sub returns the number of steps from other to it, so that
// other.Add(it.Sub(other)) equals it.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	if it.reverse {
		return other.pos - it.pos
	}
	return it.pos - other.pos
}

// Equal reports whether both iterators address the same slot of the same
// vector in the same direction.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.pos == other.pos && it.reverse == other.reverse
}

// Less reports whether it comes before other in traversal order.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Sub(other) < 0
}

// Get returns the element the iterator refers to. Unchecked.
func (it Iterator[T]) Get() T {
	return it.v.buf[it.pos]
}

// Set overwrites the element the iterator refers to. Unchecked.
func (it Iterator[T]) Set(x T) {
	it.v.buf[it.pos] = x
}

// Ptr returns a pointer to the element the iterator refers to. Unchecked.
func (it Iterator[T]) Ptr() *T {
	return &it.v.buf[it.pos]
}

// Index returns the slot index the iterator refers to, suitable for
// Insert, Erase and the other position-based operations.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Reverse reports whether the iterator walks downward.
func (it Iterator[T]) Reverse() bool {
	return it.reverse
}

// Valid reports whether the iterator still refers to a live element of
// the storage it was created on.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && !it.v.released && it.epoch == it.v.epoch &&
		it.pos >= 0 && it.pos < it.v.size
}

// Const returns a read-only view of the iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is a read-only Iterator. Its methods mirror Iterator's.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{c.it.Add(n)} }
func (c ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{c.it.Next()} }
func (c ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{c.it.Prev()} }
func (c ConstIterator[T]) Sub(other ConstIterator[T]) int { return c.it.Sub(other.it) }
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }
func (c ConstIterator[T]) Get() T { return c.it.Get() }
func (c ConstIterator[T]) Index() int { return c.it.Index() }
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }

// rangeValues returns the elements of [first, last) in traversal order.
// Forward ranges alias the source storage.
func rangeValues[T any](first, last Iterator[T]) []T {
	if first.v != last.v || first.reverse != last.reverse {
		panic(msgForeignIter)
	}
	n := last.Sub(first)
	if n < 0 {
		panic(msgNegativeLen)
	}
	if n == 0 {
		return nil
	}
	if !first.reverse {
		return first.v.buf[first.pos : first.pos+n]
	}
	out := make([]T, n)
	for i, it := 0, first; i < n; i, it = i+1, it.Next() {
		out[i] = it.Get()
	}
	return out
}

// All yields index/element pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
