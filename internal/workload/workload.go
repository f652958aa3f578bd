// Package workload replays scripted operation sequences against a vector
// and records how its storage evolves.
package workload

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/pavanmanishd/vector"
)

// ErrUnknownWorkload is returned by Run for an unregistered name.
var ErrUnknownWorkload = errors.New("workload: unknown workload")

// Sample is the vector's shape after one operation.
type Sample struct {
	Op            int
	Size          int
	Capacity      int
	Reallocations int
}

// Event records one backing block replacement. Op 0 is a replacement made
// before the first operation.
type Event struct {
	Op          int
	Size        int
	OldCapacity int
	NewCapacity int
}

// Result is the outcome of a replay.
type Result struct {
	Workload string
	Policy   vector.GrowthPolicy
	Samples  []Sample
	Events   []Event
	Metrics  vector.VectorMetrics
	// Stopped is the allocation error that ended the replay early, if any.
	Stopped error
}

// Workload is one named operation script. Step performs operation i.
type Workload struct {
	Name        string
	Description string
	Step        func(v *vector.Vector[int], i, batch int) error
}

var registry = map[string]Workload{
	"push": {
		Name:        "push",
		Description: "append one element per op",
		Step: func(v *vector.Vector[int], i, _ int) error {
			return v.PushBack(i)
		},
	},
	"insert-front": {
		Name:        "insert-front",
		Description: "insert one element at the front per op",
		Step: func(v *vector.Vector[int], i, _ int) error {
			_, err := v.Insert(0, i)
			return err
		},
	},
	"insert-n": {
		Name:        "insert-n",
		Description: "insert a batch of copies in the middle per op",
		Step: func(v *vector.Vector[int], i, batch int) error {
			_, err := v.InsertN(v.Len()/2, batch, i)
			return err
		},
	},
	"reserve-push": {
		Name:        "reserve-push",
		Description: "reserve room for every op up front, then append",
		Step: func(v *vector.Vector[int], i, _ int) error {
			return v.PushBack(i)
		},
	},
	"resize": {
		Name:        "resize",
		Description: "grow by a batch per op, shrink to fit every eighth op",
		Step: func(v *vector.Vector[int], i, batch int) error {
			if i%8 == 7 {
				return v.ShrinkToFit()
			}
			return v.ResizeValue(v.Len()+batch, i)
		},
	},
}

// Names returns the registered workload names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the named workload.
func Get(name string) (Workload, error) {
	w, ok := registry[name]
	if !ok {
		return Workload{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownWorkload, name, Names())
	}
	return w, nil
}

// Run replays ops operations of the named workload on a fresh vector built
// with opts. An allocation failure ends the replay early and is reported in
// Result.Stopped rather than as an error.
func Run(name string, ops, batch int, opts ...vector.Option) (*Result, error) {
	w, err := Get(name)
	if err != nil {
		return nil, err
	}
	v := vector.New[int](opts...)
	defer v.Release()

	res := &Result{
		Workload: name,
		Policy:   v.Policy(),
		Samples:  make([]Sample, 0, ops+1),
	}
	res.Samples = append(res.Samples, sample(v, 0))

	if name == "reserve-push" {
		before := v.Cap()
		if err := v.Reserve(ops); err != nil {
			res.Stopped = err
			res.Metrics = v.Metrics()
			return res, nil
		}
		if v.Cap() != before {
			res.Events = append(res.Events, Event{OldCapacity: before, NewCapacity: v.Cap()})
		}
	}

	for i := 0; i < ops; i++ {
		before := v.Cap()
		beforeCount := v.Reallocations()
		if err := w.Step(v, i, batch); err != nil {
			if !errors.Is(err, vector.ErrAllocation) {
				return nil, fmt.Errorf("workload %s op %d: %w", name, i+1, err)
			}
			res.Stopped = err
			break
		}
		if v.Reallocations() != beforeCount {
			res.Events = append(res.Events, Event{
				Op:          i + 1,
				Size:        v.Len(),
				OldCapacity: before,
				NewCapacity: v.Cap(),
			})
		}
		res.Samples = append(res.Samples, sample(v, i+1))
	}
	res.Metrics = v.Metrics()
	return res, nil
}

func sample(v *vector.Vector[int], op int) Sample {
	return Sample{
		Op:            op,
		Size:          v.Len(),
		Capacity:      v.Cap(),
		Reallocations: v.Reallocations(),
	}
}

// Series splits the samples into size and capacity series for plotting.
func (r *Result) Series() (sizes, capacities []float64) {
	sizes = make([]float64, len(r.Samples))
	capacities = make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		sizes[i] = float64(s.Size)
		capacities[i] = float64(s.Capacity)
	}
	return sizes, capacities
}

// AmortizedCopies returns the average number of element copies per
// operation caused by reallocation. Each event copies the live elements
// present before it.
func (r *Result) AmortizedCopies() float64 {
	ops := len(r.Samples) - 1
	if ops <= 0 {
		return 0
	}
	copies := 0
	for _, e := range r.Events {
		if e.Op > 0 {
			copies += r.Samples[e.Op-1].Size
		}
	}
	return float64(copies) / float64(ops)
}
