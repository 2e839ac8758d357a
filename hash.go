package hashtab

import "math"

// A is the fractional multiplier of ChainingMap's multiplicative hash,
// an approximation of the golden ratio conjugate.
const A = 0.618

// HashFunc maps a key to a slot index in [0, capacity).
type HashFunc[K comparable] func(key K, capacity int) int

// SumHash sums the character codes of the key and reduces it modulo capacity.
func SumHash(key string, capacity int) int {
	return int(CharCodeSum(key) % uint64(capacity))
}

// CharCodeSum returns the sum of the Unicode code points of s.
func CharCodeSum(s string) uint64 {
	var sum uint64
	for _, r := range s {
		sum += uint64(r)
	}

	return sum
}

// MultiplicativeHash takes the fractional part of key*A and scales it by capacity.
func MultiplicativeHash(key int64, capacity int) int {
	product := float64(key) * A
	fractional := product - math.Floor(product)

	idx := int(float64(capacity) * fractional)
	// Rounding may land exactly on capacity for huge tables.
	if idx >= capacity {
		idx = capacity - 1
	}

	return idx
}

type options[K comparable] struct {
	hashFunc HashFunc[K]
}

type Option[K comparable] func(o *options[K])

// Override default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.hashFunc = f
	}
}

func buildOptions[K comparable](def HashFunc[K], opts []Option[K]) options[K] {
	o := options[K]{hashFunc: def}
	for _, opt := range opts {
		opt(&o)
	}

	if o.hashFunc == nil {
		o.hashFunc = def
	}

	return o
}
