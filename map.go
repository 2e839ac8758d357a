package hashtab

import "iter"

// ChainingMap maps integer keys to strings. Each slot holds a bucket of
// entries and bucket indexes come from MultiplicativeHash unless overridden.
//
// The map doubles its bucket count once it holds 75% as many keys, re-adding
// every entry in bucket order. Keys can't be deleted.
//
// ChainingMap is not safe for concurrent use.
type ChainingMap struct {
	buckets []bucket

	capacity   int
	size       int
	collisions int

	hashFunc HashFunc[int64]
}

// Returns a new map with the given initial number of buckets.
// Capacities below MinCapacity are raised to it.
func NewMap(capacity int, opts ...Option[int64]) *ChainingMap {
	o := buildOptions(MultiplicativeHash, opts)

	var cm ChainingMap
	cm.init(normalizeCapacity(capacity), o.hashFunc)

	return &cm
}

func (cm *ChainingMap) init(capacity int, hashFunc HashFunc[int64]) {
	cm.buckets = make([]bucket, capacity)
	cm.capacity = capacity
	cm.size = 0
	cm.collisions = 0
	cm.hashFunc = hashFunc
}

// Add sets the value for key.
// Returns whether the key is new; an existing key has its value replaced.
func (cm *ChainingMap) Add(key int64, value string) bool {
	if needsGrow(cm.size, cm.capacity) {
		cm.resize()
	}

	return cm.add(key, value)
}

func (cm *ChainingMap) add(key int64, value string) bool {
	idx := cm.hashFunc(key, cm.capacity)
	b := cm.buckets[idx]

	if i := b.lookup(key); i >= 0 {
		b[i].value = value
		return false
	}

	if len(b) > 0 {
		cm.collisions++
	}

	cm.buckets[idx] = append(b, entry{key: key, value: value})
	cm.size++

	return true
}

// Get returns the value stored for key and whether it was found.
func (cm *ChainingMap) Get(key int64) (string, bool) {
	b := cm.buckets[cm.hashFunc(key, cm.capacity)]

	if i := b.lookup(key); i >= 0 {
		return b[i].value, true
	}

	return "", false
}

// All yields every entry in bucket order, then insertion order within a bucket.
func (cm *ChainingMap) All() iter.Seq2[int64, string] {
	return func(yield func(int64, string) bool) {
		for _, b := range cm.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (cm *ChainingMap) Len() int {
	return cm.size
}

func (cm *ChainingMap) Cap() int {
	return cm.capacity
}

// Collisions returns the number of new keys that landed in a non-empty
// bucket since the last resize.
func (cm *ChainingMap) Collisions() int {
	return cm.collisions
}

func (cm *ChainingMap) LoadFactor() float64 {
	return loadFactor(cm.size, cm.capacity)
}

// Footprint returns the size in bytes of the bucket array and bucket storage.
func (cm *ChainingMap) Footprint() uintptr {
	return chainFootprint(cm.buckets)
}

func (cm *ChainingMap) Stats() Stats {
	return Stats{
		Size:       cm.Len(),
		Capacity:   cm.Cap(),
		Collisions: cm.Collisions(),
		LoadFactor: cm.LoadFactor(),
		Footprint:  cm.Footprint(),
	}
}

func (cm *ChainingMap) resize() {
	old := cm.buckets
	cm.init(cm.capacity*2, cm.hashFunc)

	for _, b := range old {
		for _, e := range b {
			cm.add(e.key, e.value)
		}
	}
}
