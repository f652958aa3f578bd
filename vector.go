package vector

import (
	"fmt"
	"math"
)

// Vector is a growable array of T backed by a single contiguous block.
// Not goroutine-safe; callers must serialize access.
//
// The zero value is an empty vector with no storage that allocates
// DefaultInitialCapacity slots on first append.
type Vector[T any] struct {
	buf           []T // backing block; len(buf) is the capacity
	size          int // live slots are buf[:size]
	reallocations int
	epoch         uint64 // bumped whenever buf changes identity
	policy        GrowthPolicy
	released      bool
}

// New creates an empty vector with the default initial capacity.
func New[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{policy: resolvePolicy[T](opts)}
	// An element type too large for even the initial block leaves the
	// vector without storage; the first append then reports the failure.
	if buf, err := allocSlots[T](v.policy.InitialCapacity, v.policy.Limit); err == nil {
		v.buf = buf
	}
	return v
}

// NewSized creates a vector holding n zero values. Capacity is n scaled by
// the growth factor.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v, err := newWithCapacity[T](n, opts)
	if err != nil {
		return nil, err
	}
	v.size = n
	return v, nil
}

// NewFilled creates a vector holding n copies of x.
func NewFilled[T any](n int, x T, opts ...Option) (*Vector[T], error) {
	v, err := newWithCapacity[T](n, opts)
	if err != nil {
		return nil, err
	}
	fill(v.buf[:n], x)
	v.size = n
	return v, nil
}

// FromSlice creates a vector holding a copy of vals, in order.
func FromSlice[T any](vals []T, opts ...Option) (*Vector[T], error) {
	v, err := newWithCapacity[T](len(vals), opts)
	if err != nil {
		return nil, err
	}
	v.size = copy(v.buf, vals)
	return v, nil
}

// NewFromRange creates a vector holding a copy of every element in
// [first, last). The iterators may come from any vector and may be reverse
// iterators.
func NewFromRange[T any](first, last Iterator[T], opts ...Option) (*Vector[T], error) {
	return FromSlice(rangeValues(first, last), opts...)
}

// Of creates a vector holding vals. It panics if the storage cannot be
// allocated; use FromSlice to handle that case.
func Of[T any](vals ...T) *Vector[T] {
	return OfWith(nil, vals...)
}

// OfWith is Of with construction options.
func OfWith[T any](opts []Option, vals ...T) *Vector[T] {
	v, err := FromSlice(vals, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func newWithCapacity[T any](n int, opts []Option) (*Vector[T], error) {
	if n < 0 {
		panic(msgNegativeLen)
	}
	p := resolvePolicy[T](opts)
	if n > p.Limit {
		return nil, &AllocError{Requested: n, Limit: p.Limit, ElemSize: elemSize[T]()}
	}
	buf, err := allocSlots[T](p.grow(n), p.Limit)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf, policy: p}, nil
}

// Clone returns an independent copy. The copy has the same capacity as v,
// not just its length.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.live()
	buf, err := allocSlots[T](len(v.buf), v.policy.Limit)
	if err != nil {
		return nil, err
	}
	copy(buf, v.buf[:v.size])
	return &Vector[T]{buf: buf, size: v.size, policy: v.policy}, nil
}

// Take moves v's storage into a new vector without copying elements.
// v is left empty with no storage and remains usable.
func (v *Vector[T]) Take() *Vector[T] {
	v.live()
	t := &Vector[T]{
		buf:           v.buf,
		size:          v.size,
		reallocations: v.reallocations,
		policy:        v.policy,
	}
	v.reset()
	return t
}

// MoveFrom replaces v's contents with src's storage and growth policy.
// src is left empty with no storage. Moving a vector into itself does nothing.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.live()
	src.live()
	if v == src {
		return
	}
	v.buf, v.size, v.reallocations, v.policy = src.buf, src.size, src.reallocations, src.policy
	v.epoch++
	src.reset()
}

// CopyFrom replaces v's contents with a copy of src's live elements.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	v.live()
	src.live()
	if v == src {
		return nil
	}
	return v.replace(src.size, func(dst []T) {
		copy(dst, src.buf[:src.size])
	})
}

// Assign replaces v's contents with count copies of x.
func (v *Vector[T]) Assign(count int, x T) error {
	v.live()
	if count < 0 {
		panic(msgNegativeLen)
	}
	return v.replace(count, func(dst []T) {
		fill(dst, x)
	})
}

// AssignSlice replaces v's contents with a copy of vals. vals may alias v.
func (v *Vector[T]) AssignSlice(vals []T) error {
	v.live()
	return v.replace(len(vals), func(dst []T) {
		copy(dst, vals)
	})
}

// AssignRange replaces v's contents with a copy of [first, last).
func (v *Vector[T]) AssignRange(first, last Iterator[T]) error {
	return v.AssignSlice(rangeValues(first, last))
}

// replace sets the live length to count and lets fillFn write every live
// slot. Storage is only replaced when count exceeds the capacity, and then
// the old contents are not carried over.
func (v *Vector[T]) replace(count int, fillFn func(dst []T)) error {
	if count > len(v.buf) {
		if count > v.policy.Limit {
			return v.limitError(count)
		}
		buf, err := allocSlots[T](v.policy.grow(count), v.policy.Limit)
		if err != nil {
			return err
		}
		// The source may alias the old block, so fill before dropping it.
		fillFn(buf[:count])
		v.buf = buf
		v.size = count
		v.reallocations++
		v.epoch++
		return nil
	}
	fillFn(v.buf[:count])
	if count < v.size {
		destroy(v.buf[count:v.size])
	}
	v.size = count
	return nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxSize returns the largest length the vector can ever reach: the
// configured limit, or the allocator's bound for T.
func (v *Vector[T]) MaxSize() int {
	v.live()
	return v.policy.Limit
}

// Reallocations returns how many times the backing block has been replaced.
// Intended for tests and diagnostics.
func (v *Vector[T]) Reallocations() int {
	return v.reallocations
}

// Policy returns the growth policy in effect.
func (v *Vector[T]) Policy() GrowthPolicy {
	v.live()
	return v.policy
}

// Reserve ensures capacity for at least n elements. If n exceeds the
// current capacity the block is reallocated to exactly n slots; otherwise
// nothing happens.
func (v *Vector[T]) Reserve(n int) error {
	v.live()
	if n <= len(v.buf) {
		return nil
	}
	return v.reserve(n, true)
}

// ShrinkToFit reallocates the block so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() error {
	v.live()
	if len(v.buf) == v.size {
		return nil
	}
	return v.reallocate(v.size)
}

// Resize sets the length to n. New slots hold the zero value; when
// shrinking, the slots past n are destroyed but capacity is kept.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeValue(n, zero)
}

// ResizeValue is like Resize but new slots hold copies of x.
func (v *Vector[T]) ResizeValue(n int, x T) error {
	v.live()
	if n < 0 {
		panic(msgNegativeLen)
	}
	if n <= v.size {
		destroy(v.buf[n:v.size])
		v.size = n
		return nil
	}
	if err := v.reserve(n, true); err != nil {
		return err
	}
	fill(v.buf[v.size:n], x)
	v.size = n
	return nil
}

// Clear destroys every element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.live()
	destroy(v.buf[:v.size])
	v.size = 0
}

// Swap exchanges the contents of v and other in constant time. Storage,
// length, capacity, reallocation count and growth policy all move together.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.live()
	other.live()
	if v == other {
		return
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.reallocations, other.reallocations = other.reallocations, v.reallocations
	v.policy, other.policy = other.policy, v.policy
	v.epoch++
	other.epoch++
}

// Release drops the backing block and makes the vector unusable.
// Any subsequent mutation or checked access panics.
func (v *Vector[T]) Release() {
	v.buf = nil
	v.size = 0
	v.released = true
	v.epoch++
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.buf[:v.size])
}

// reserve makes room for required live slots. When the block is too small
// it is reallocated to exactly required slots, or to the policy capacity
// when exact is false.
func (v *Vector[T]) reserve(required int, exact bool) error {
	if required <= len(v.buf) {
		return nil
	}
	if required > v.policy.Limit {
		return v.limitError(required)
	}
	n := required
	if !exact {
		n = v.policy.grow(required)
	}
	return v.reallocate(n)
}

// reserveExtra is reserve for count slots beyond the current length.
func (v *Vector[T]) reserveExtra(count int, exact bool) error {
	if count > v.policy.Limit-v.size {
		requested := math.MaxInt
		if count <= math.MaxInt-v.size {
			requested = v.size + count
		}
		return v.limitError(requested)
	}
	return v.reserve(v.size+count, exact)
}

// growForAppend makes room for one more element at the end. The new
// capacity is based on the current capacity, not the requested length.
func (v *Vector[T]) growForAppend() error {
	c := len(v.buf)
	if v.size < c {
		return nil
	}
	if c >= v.policy.Limit {
		return v.limitError(c + 1)
	}
	n := v.policy.InitialCapacity
	if c > 0 {
		n = v.policy.grow(c)
	}
	return v.reallocate(n)
}

// reallocate moves the live elements into a fresh block of exactly n
// slots. On failure nothing is modified.
func (v *Vector[T]) reallocate(n int) error {
	buf, err := allocSlots[T](n, v.policy.Limit)
	if err != nil {
		return err
	}
	copy(buf, v.buf[:v.size])
	v.buf = buf
	v.reallocations++
	v.epoch++
	return nil
}

func (v *Vector[T]) limitError(requested int) error {
	return &AllocError{Requested: requested, Limit: v.policy.Limit, ElemSize: elemSize[T]()}
}

// reset leaves v empty, without storage, after its block was moved away.
func (v *Vector[T]) reset() {
	v.buf = nil
	v.size = 0
	v.reallocations = 0
	v.epoch++
}

// live panics if the vector was released and fills in the default policy
// for a zero-value vector.
func (v *Vector[T]) live() {
	if v.released {
		panic(msgReleased)
	}
	if v.policy.Factor == 0 {
		v.policy = resolvePolicy[T](nil)
	}
}

func fill[T any](dst []T, x T) {
	for i := range dst {
		dst[i] = x
	}
}
