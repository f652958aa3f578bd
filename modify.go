package vector

import "golang.org/x/exp/slices"

// PushBack appends x. When the vector is full the capacity is multiplied
// by the growth factor first. Amortized O(1).
func (v *Vector[T]) PushBack(x T) error {
	v.live()
	if err := v.growForAppend(); err != nil {
		return err
	}
	v.buf[v.size] = x
	v.size++
	return nil
}

// EmplaceBack appends a new element initialized in place by init, which
// receives a pointer to a zeroed slot.
func (v *Vector[T]) EmplaceBack(init func(*T)) error {
	v.live()
	if err := v.growForAppend(); err != nil {
		return err
	}
	init(&v.buf[v.size])
	v.size++
	return nil
}

// PopBack destroys the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	v.live()
	if v.size == 0 {
		panic(msgPopEmpty)
	}
	v.size--
	destroy(v.buf[v.size : v.size+1])
}

// Insert places x before position pos, shifting the elements at and after
// pos one slot to the right. pos may equal Len() to append. It returns pos.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	v.live()
	v.checkInsertPos(pos)
	if err := v.reserveExtra(1, false); err != nil {
		return pos, err
	}
	v.shiftRight(pos, 1)
	v.buf[pos] = x
	return pos, nil
}

// Emplace is like Insert but initializes the new element in place.
func (v *Vector[T]) Emplace(pos int, init func(*T)) (int, error) {
	v.live()
	v.checkInsertPos(pos)
	if err := v.reserveExtra(1, false); err != nil {
		return pos, err
	}
	v.shiftRight(pos, 1)
	var zero T
	v.buf[pos] = zero
	init(&v.buf[pos])
	return pos, nil
}

// InsertN places count copies of x before pos. If the block is too small
// it is reallocated to exactly Len()+count slots.
func (v *Vector[T]) InsertN(pos, count int, x T) (int, error) {
	v.live()
	v.checkInsertPos(pos)
	if count < 0 {
		panic(msgNegativeLen)
	}
	if count == 0 {
		return pos, nil
	}
	if err := v.reserveExtra(count, true); err != nil {
		return pos, err
	}
	v.shiftRight(pos, count)
	fill(v.buf[pos:pos+count], x)
	return pos, nil
}

// InsertSlice places a copy of vals before pos. vals may alias v.
func (v *Vector[T]) InsertSlice(pos int, vals []T) (int, error) {
	v.live()
	v.checkInsertPos(pos)
	if len(vals) == 0 {
		return pos, nil
	}
	if overlaps(v.buf, vals) {
		vals = slices.Clone(vals)
	}
	if err := v.reserveExtra(len(vals), true); err != nil {
		return pos, err
	}
	v.shiftRight(pos, len(vals))
	copy(v.buf[pos:], vals)
	return pos, nil
}

// InsertRange places a copy of [first, last) before pos.
func (v *Vector[T]) InsertRange(pos int, first, last Iterator[T]) (int, error) {
	return v.InsertSlice(pos, rangeValues(first, last))
}

// Erase removes the element at pos and returns pos, which now indexes the
// element that followed it (or equals Len() if the last element was
// removed).
func (v *Vector[T]) Erase(pos int) int {
	v.live()
	if pos < 0 || pos >= v.size {
		panic(msgErasePos)
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first.
func (v *Vector[T]) EraseRange(first, last int) int {
	v.live()
	if first < 0 || first > last || last > v.size {
		panic(msgErasePos)
	}
	if first == last {
		return first
	}
	n := copy(v.buf[first:], v.buf[last:v.size])
	destroy(v.buf[first+n : v.size])
	v.size = first + n
	return first
}

// shiftRight opens a gap of n slots at pos. Capacity must already allow
// Len()+n elements. The gap keeps stale values until the caller writes it.
func (v *Vector[T]) shiftRight(pos, n int) {
	copy(v.buf[pos+n:v.size+n], v.buf[pos:v.size])
	v.size += n
}

func (v *Vector[T]) checkInsertPos(pos int) {
	if pos < 0 || pos > v.size {
		panic(msgInsertPos)
	}
}
