// Package vector implements a generic, resizable, contiguous-storage
// sequence container.
//
// # Overview
//
// A Vector owns a single backing block whose size (the capacity) is
// independent of the number of live elements (the length). Appends are
// amortized O(1) because the block grows multiplicatively, and indexing is
// O(1) because elements are stored contiguously. This is useful for:
//
//   - Long-lived buffers whose growth should be observable and tunable
//   - Code that needs explicit control over capacity (Reserve, ShrinkToFit)
//   - Recoverable handling of allocation limits instead of a runtime crash
//
// # Basic Usage
//
//	v := vector.New[int]() // capacity 6, length 0
//	defer v.Release()
//
//	if err := v.PushBack(42); err != nil {
//		return err // only *AllocError is possible here
//	}
//	x := v.Index(0)      // unchecked
//	y, err := v.At(10)   // checked: *RangeError
//
//	pos, err := v.Insert(0, 7)
//	v.Erase(pos)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth Policy
//
// Growth is multiplicative with a default factor of 4:
//
//   - PushBack/EmplaceBack on a full vector: capacity × factor
//   - Insert/Emplace of one element: (length+1) × factor
//   - Assign, AssignSlice, CopyFrom past capacity: count × factor
//   - InsertN, InsertSlice, Reserve, Resize: exactly what is needed
//
// The factor, the initial capacity and an upper limit on slots are set with
// WithGrowthFactor, WithInitialCapacity and WithLimit. Every block
// replacement increments Reallocations.
//
// # Thread Safety
//
// Vector is not thread-safe. Callers must serialize all mutation and must
// not read while another goroutine writes.
//
// # Iterator Validity
//
// Iterators, pointers from Ref/AtRef and slices from Data refer to the
// current block. Reallocation invalidates all of them; Insert and Erase
// shift the elements at and after the affected position. Iterator.Valid
// detects reallocation, Swap, MoveFrom/Take and Release.
//
// # Important Notes
//
//   - Index, Ref, Set, Front and Back do not check the length
//   - PopBack on an empty vector, bad Insert/Erase positions and any use
//     after Release panic
//   - Allocation failures return *AllocError and leave the vector unchanged
//   - A genuine runtime out-of-memory is fatal in Go and cannot be reported
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//	fmt.Printf("Bytes reserved: %d\n", m.BytesReserved)
package vector
