package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; the concrete *RangeError and
// *AllocError values returned by operations unwrap to these.
var (
	// ErrOutOfRange is returned by checked access when the index is not in [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocation is returned when a backing block cannot be allocated.
	// The vector is left exactly as it was before the failing call.
	ErrAllocation = errors.New("vector: allocation failed")
)

// RangeError describes a failed checked access.
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// AllocError describes a failed slot allocation.
type AllocError struct {
	Requested int   // slots requested
	Limit     int   // largest slot count the vector may hold
	ElemSize  int   // bytes per slot
	Err       error // runtime cause, if the request passed the limit check
}

func (e *AllocError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vector: allocation of %d slots (%d bytes each) failed: %v", e.Requested, e.ElemSize, e.Err)
	}
	return fmt.Sprintf("vector: allocation of %d slots exceeds limit %d", e.Requested, e.Limit)
}

func (e *AllocError) Unwrap() error {
	return ErrAllocation
}

// Panic messages for precondition violations.
const (
	msgReleased    = "vector: use after Release()"
	msgPopEmpty    = "vector: PopBack on empty vector"
	msgInsertPos   = "vector: insert position out of range"
	msgErasePos    = "vector: erase position out of range"
	msgNegativeLen = "vector: negative length"
	msgForeignIter = "vector: iterator belongs to a different vector"
)
