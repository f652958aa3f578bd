package vector

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * elemSize[T]()
}

// BytesReserved returns the size in bytes of the whole backing block.
func (v *Vector[T]) BytesReserved() int {
	return len(v.buf) * elemSize[T]()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.buf))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.size,
		Capacity:      len(v.buf),
		Reallocations: v.reallocations,
		ElemSize:      elemSize[T](),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Backing block replacements so far
	ElemSize      int     // Bytes per slot
	BytesInUse    int     // Bytes held by live elements
	BytesReserved int     // Bytes held by the whole block
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
