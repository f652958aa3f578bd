package vector

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAllocSlots(t *testing.T) {
	buf, err := allocSlots[testStruct](10, 100)
	if err != nil {
		t.Fatalf("allocSlots(10): %v", err)
	}
	if len(buf) != 10 {
		t.Errorf("allocSlots(10) length = %d, want 10", len(buf))
	}
	for i, s := range buf {
		if s != (testStruct{}) {
			t.Errorf("slot %d not zeroed: %+v", i, s)
		}
	}

	empty, err := allocSlots[int](0, 100)
	if err != nil || empty != nil {
		t.Errorf("allocSlots(0) = %v, %v; want nil, nil", empty, err)
	}
}

func TestAllocSlotsOverLimit(t *testing.T) {
	_, err := allocSlots[int](11, 10)
	var ae *AllocError
	if !errors.As(err, &ae) {
		t.Fatalf("allocSlots over limit error = %v, want *AllocError", err)
	}
	if ae.Requested != 11 || ae.Limit != 10 || ae.ElemSize != int(unsafe.Sizeof(int(0))) {
		t.Errorf("AllocError = %+v", *ae)
	}
	if !errors.Is(err, ErrAllocation) {
		t.Error("AllocError does not unwrap to ErrAllocation")
	}
}

func TestAllocSlotsRuntimeRefusal(t *testing.T) {
	// A limit above the runtime's own ceiling lets make itself fail.
	_, err := allocSlots[[1 << 20]byte](math.MaxInt/2, math.MaxInt)
	var ae *AllocError
	if !errors.As(err, &ae) || ae.Err == nil {
		t.Fatalf("allocSlots refused by runtime error = %v, want *AllocError with cause", err)
	}
}

func TestAllocSlotsNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r != msgNegativeLen {
			t.Errorf("recovered %v, want %q", r, msgNegativeLen)
		}
	}()
	allocSlots[int](-1, 10)
}

func TestMaxSlots(t *testing.T) {
	if got := maxSlots[struct{}](); got != math.MaxInt {
		t.Errorf("maxSlots[struct{}]() = %d, want MaxInt", got)
	}
	want := int(maxAllocBytes / uint64(unsafe.Sizeof(testStruct{})))
	if got := maxSlots[testStruct](); got != want {
		t.Errorf("maxSlots[testStruct]() = %d, want %d", got, want)
	}
	if got := New[testStruct]().MaxSize(); got != want {
		t.Errorf("MaxSize() = %d, want %d", got, want)
	}
	if got := New[int](WithLimit(99)).MaxSize(); got != 99 {
		t.Errorf("MaxSize() with limit = %d, want 99", got)
	}
}

func TestGrowthPolicy(t *testing.T) {
	p := GrowthPolicy{Factor: 4, InitialCapacity: 6, Limit: 100}
	tests := []struct {
		required int
		expected int
	}{
		{0, 6},
		{1, 4},
		{6, 24},
		{25, 100},
		{26, 100},
	}
	for _, tt := range tests {
		if got := p.grow(tt.required); got != tt.expected {
			t.Errorf("grow(%d) = %d, want %d", tt.required, got, tt.expected)
		}
	}
}

func TestOverlaps(t *testing.T) {
	buf := make([]int, 10)
	other := make([]int, 10)
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"same", buf, buf, true},
		{"sub slice", buf, buf[3:5], true},
		{"adjacent", buf[:5], buf[5:], false},
		{"distinct", buf, other, false},
		{"empty", buf, buf[4:4], false},
	}
	for _, tt := range tests {
		if got := overlaps(tt.a, tt.b); got != tt.want {
			t.Errorf("overlaps %s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDestroy(t *testing.T) {
	s := []*int{new(int), new(int)}
	destroy(s)
	for i, p := range s {
		if p != nil {
			t.Errorf("slot %d = %v, want nil", i, p)
		}
	}
}

func BenchmarkAllocSlots(b *testing.B) {
	for i := 0; i < b.N; i++ {
		allocSlots[int](1024, math.MaxInt)
	}
}
