package vector

// DefaultInitialCapacity is the capacity of a default-constructed vector.
const DefaultInitialCapacity = 6

// DefaultGrowthFactor multiplies the required slot count whenever a vector
// grows through the policy. A wide margin trades memory for fewer
// reallocations.
const DefaultGrowthFactor = 4

// GrowthPolicy controls how a vector sizes its backing block.
//
// Single-element growth (PushBack, Insert, Emplace) and whole-content
// assignment multiply the required slot count by Factor. Counted inserts,
// Reserve and Resize allocate exactly what was asked for.
type GrowthPolicy struct {
	Factor          int // multiplier applied on policy growth
	InitialCapacity int // capacity of an empty vector
	Limit           int // maximum slots; requests above it fail with ErrAllocation
}

// DefaultGrowthPolicy returns the policy used when no options are given.
func DefaultGrowthPolicy() GrowthPolicy {
	return GrowthPolicy{
		Factor:          DefaultGrowthFactor,
		InitialCapacity: DefaultInitialCapacity,
	}
}

// Option configures a vector at construction time.
type Option func(*GrowthPolicy)

// WithGrowthFactor sets the growth multiplier. Values below 2 are replaced
// by DefaultGrowthFactor; a factor of 1 would make append quadratic.
func WithGrowthFactor(factor int) Option {
	return func(p *GrowthPolicy) {
		p.Factor = factor
	}
}

// WithInitialCapacity sets the capacity of an empty vector.
// If n <= 0, DefaultInitialCapacity is used.
func WithInitialCapacity(n int) Option {
	return func(p *GrowthPolicy) {
		p.InitialCapacity = n
	}
}

// WithLimit caps the number of slots the vector may ever allocate.
// If n <= 0, the allocator's own maximum is used.
func WithLimit(n int) Option {
	return func(p *GrowthPolicy) {
		p.Limit = n
	}
}

// resolvePolicy applies opts over the defaults and normalizes the result
// for element type T.
func resolvePolicy[T any](opts []Option) GrowthPolicy {
	p := DefaultGrowthPolicy()
	for _, opt := range opts {
		opt(&p)
	}
	if p.Factor < 2 {
		p.Factor = DefaultGrowthFactor
	}
	if p.InitialCapacity <= 0 {
		p.InitialCapacity = DefaultInitialCapacity
	}
	if ceiling := maxSlots[T](); p.Limit <= 0 || p.Limit > ceiling {
		p.Limit = ceiling
	}
	if p.InitialCapacity > p.Limit {
		p.InitialCapacity = p.Limit
	}
	return p
}

// grow returns the capacity to allocate when required slots are needed
// under the multiplicative policy. The result is clamped to the limit, so
// it is always >= required when required fits at all.
func (p GrowthPolicy) grow(required int) int {
	if required <= 0 {
		return p.InitialCapacity
	}
	if required > p.Limit/p.Factor {
		return p.Limit
	}
	return required * p.Factor
}
