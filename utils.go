package hashtab

import "unsafe"

const (
	// MinCapacity is the smallest capacity a container is created with.
	// Below it the 0.75 growth threshold could let count reach capacity.
	MinCapacity = 4

	// MaxLoadFactor is the occupancy ratio at which containers double.
	MaxLoadFactor = 0.75
)

// Returns a capacity large enough to hold n entries without growing.
func CapacityFor(n int) int {
	return max(int(float64(n)/MaxLoadFactor)+1, MinCapacity)
}

func normalizeCapacity(capacity int) int {
	return max(capacity, MinCapacity)
}

func needsGrow(size, capacity int) bool {
	return float64(size) >= float64(capacity)*MaxLoadFactor
}

func loadFactor(size, capacity int) float64 {
	return float64(size) / float64(capacity)
}

// Bytes held by a probing table's slot array and occupancy bitset,
// not counting the string data the slots point to.
func probeFootprint(t *probeTable) uintptr {
	return uintptr(len(t.slots))*unsafe.Sizeof("") +
		uintptr(len(t.used))*unsafe.Sizeof(uint64(0))
}

// Bytes held by the bucket headers and the entries they have room for.
func chainFootprint(buckets []bucket) uintptr {
	size := uintptr(len(buckets)) * unsafe.Sizeof(bucket(nil))
	for _, b := range buckets {
		size += uintptr(cap(b)) * unsafe.Sizeof(entry{})
	}

	return size
}
