package hashtab

import "iter"

// ProbingSet is a set of strings backed by a single slot array with linear
// probing. Slot indexes come from SumHash unless overridden.
//
// The set doubles its capacity once it is 75% full, rehashing every key in
// slot order. Keys can't be deleted.
//
// ProbingSet is not safe for concurrent use.
type ProbingSet struct {
	probeTable
}

// Returns a new set with the given initial capacity.
// Capacities below MinCapacity are raised to it.
func NewSet(capacity int, opts ...Option[string]) *ProbingSet {
	o := buildOptions(SumHash, opts)

	var ps ProbingSet
	ps.init(normalizeCapacity(capacity), o.hashFunc)

	return &ps
}

// Puts a key in the set.
// Returns whether the key is new. Putting an existing key is a no-op.
func (ps *ProbingSet) Put(key string) (bool, error) {
	if needsGrow(ps.size, ps.capacity) {
		if err := ps.resize(); err != nil {
			return false, err
		}
	}

	return ps.put(key)
}

// Checks whether a key is in the set.
func (ps *ProbingSet) Contains(key string) bool {
	return ps.has(key)
}

// All yields every key in slot order.
func (ps *ProbingSet) All() iter.Seq[string] {
	return ps.keys()
}

func (ps *ProbingSet) Len() int {
	return ps.size
}

func (ps *ProbingSet) Cap() int {
	return ps.capacity
}

// Collisions returns the number of probe steps taken past occupied slots
// since the last resize.
func (ps *ProbingSet) Collisions() int {
	return ps.collisions
}

func (ps *ProbingSet) LoadFactor() float64 {
	return loadFactor(ps.size, ps.capacity)
}

// Footprint returns the size in bytes of the slot array and its occupancy bitset.
func (ps *ProbingSet) Footprint() uintptr {
	return probeFootprint(&ps.probeTable)
}

func (ps *ProbingSet) Stats() Stats {
	return Stats{
		Size:       ps.Len(),
		Capacity:   ps.Cap(),
		Collisions: ps.Collisions(),
		LoadFactor: ps.LoadFactor(),
		Footprint:  ps.Footprint(),
	}
}

// resize doubles the capacity and re-puts every key in old slot order.
// Collisions are counted afresh.
func (ps *ProbingSet) resize() error {
	old := ps.probeTable
	ps.init(old.capacity*2, old.hashFunc)

	for key := range old.keys() {
		if _, err := ps.put(key); err != nil {
			return err
		}
	}

	return nil
}
