package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// maxAllocBytes bounds a single backing block. It mirrors the runtime's own
// ceiling on heap objects closely enough that requests beneath it are only
// rejected by a genuine out-of-memory condition.
var maxAllocBytes = func() uint64 {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return 1 << 47
	}
	return math.MaxInt32
}()

// elemSize returns the size in bytes of one T slot.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// maxSlots returns the largest number of T slots a single block can hold.
func maxSlots[T any]() int {
	size := uint64(elemSize[T]())
	if size == 0 {
		return math.MaxInt
	}
	n := maxAllocBytes / size
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// allocSlots returns a block of n zeroed T slots. It never panics: requests
// above limit and requests the runtime refuses come back as *AllocError.
func allocSlots[T any](n, limit int) (buf []T, err error) {
	if n < 0 {
		panic(msgNegativeLen)
	}
	if n > limit {
		return nil, &AllocError{Requested: n, Limit: limit, ElemSize: elemSize[T]()}
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = &AllocError{Requested: n, Limit: limit, ElemSize: elemSize[T](), Err: fmt.Errorf("%v", r)}
		}
	}()
	return make([]T, n), nil
}

// destroy resets slots to the zero value so the garbage collector can
// reclaim anything they referenced. The slots stay allocated.
func destroy[T any](slots []T) {
	clear(slots)
}

// overlaps reports whether a and b share any backing slots.
func overlaps[T any](a, b []T) bool {
	size := uintptr(elemSize[T]())
	if len(a) == 0 || len(b) == 0 || size == 0 {
		return false
	}
	as := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bs := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	ae := as + uintptr(len(a))*size
	be := bs + uintptr(len(b))*size
	return as < be && bs < ae
}
