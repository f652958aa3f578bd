package vector

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Test initial state
	if v.BytesInUse() != 0 {
		t.Errorf("Initial BytesInUse = %d, want 0", v.BytesInUse())
	}
	if v.BytesReserved() != 6*8 {
		t.Errorf("Initial BytesReserved = %d, want 48", v.BytesReserved())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}

	mustPush(t, v, 1, 2, 3)
	if v.BytesInUse() != 24 {
		t.Errorf("BytesInUse = %d, want 24", v.BytesInUse())
	}
	if v.Utilization() != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", v.Utilization())
	}

	// Force growth
	mustPush(t, v, 4, 5, 6, 7)
	m := v.Metrics()
	want := VectorMetrics{
		Size:          7,
		Capacity:      24,
		Reallocations: 1,
		ElemSize:      8,
		BytesInUse:    56,
		BytesReserved: 192,
		Utilization:   7.0 / 24.0,
	}
	if m != want {
		t.Errorf("Metrics() = %+v, want %+v", m, want)
	}
}

func TestVectorMetricsAfterClear(t *testing.T) {
	v := Of(1, 2, 3)
	v.Clear()
	if v.BytesInUse() != 0 {
		t.Errorf("BytesInUse after Clear = %d, want 0", v.BytesInUse())
	}
	if v.Utilization() != 0 {
		t.Errorf("Utilization after Clear = %f, want 0", v.Utilization())
	}
	// Storage should remain
	if v.BytesReserved() == 0 {
		t.Error("BytesReserved should not be 0 after Clear")
	}
}

func TestVectorMetricsAfterRelease(t *testing.T) {
	v := Of(1, 2, 3)
	v.Release()

	m := v.Metrics()
	if m.Size != 0 || m.Capacity != 0 || m.BytesReserved != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zero usage", m)
	}
}

func TestVectorMetricsZeroSizeElements(t *testing.T) {
	v := Of(struct{}{}, struct{}{})
	m := v.Metrics()
	if m.ElemSize != 0 || m.BytesInUse != 0 || m.BytesReserved != 0 {
		t.Errorf("Metrics for struct{} = %+v, want zero bytes", m)
	}
	if m.Size != 2 {
		t.Errorf("Size = %d, want 2", m.Size)
	}
}
