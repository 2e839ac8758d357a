package hashtab

import (
	"errors"
	"iter"
)

// ErrContainerFull is returned when linear probing wraps around the whole
// table without finding a free slot. The growth policy keeps this from
// happening, so seeing it means an invariant has been broken.
var ErrContainerFull = errors.New("hashtab: container is full")

// probeTable is a fixed-capacity open addressing table with linear probing.
// It never grows on its own; ProbingSet owns the growth policy.
type probeTable struct {
	slots []string
	used  bitset

	capacity   int
	size       int
	collisions int

	hashFunc HashFunc[string]
}

func (t *probeTable) init(capacity int, hashFunc HashFunc[string]) {
	t.slots = make([]string, capacity)
	t.used = newBitset(capacity)
	t.capacity = capacity
	t.size = 0
	t.collisions = 0
	t.hashFunc = hashFunc
}

// put inserts the key, returning whether it was absent before.
func (t *probeTable) put(key string) (bool, error) {
	start := t.hashFunc(key, t.capacity)

	idx := start
	for t.used.has(idx) {
		if t.slots[idx] == key {
			return false, nil
		}

		t.collisions++

		idx = (idx + 1) % t.capacity
		if idx == start {
			return false, ErrContainerFull
		}
	}

	t.store(idx, key)

	return true, nil
}

func (t *probeTable) store(idx int, key string) {
	t.slots[idx] = key
	t.used.set(idx)
	t.size++
}

func (t *probeTable) has(key string) bool {
	idx := t.hashFunc(key, t.capacity)

	for range t.capacity {
		if !t.used.has(idx) {
			return false
		}

		if t.slots[idx] == key {
			return true
		}

		idx = (idx + 1) % t.capacity
	}

	return false
}

// keys yields the stored keys in slot order.
func (t *probeTable) keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for idx := t.used.next(0); idx >= 0; idx = t.used.next(idx + 1) {
			if !yield(t.slots[idx]) {
				return
			}
		}
	}
}
