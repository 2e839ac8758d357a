package hashtab

// Stats is a point-in-time snapshot of a container's metrics.
type Stats struct {
	Size       int
	Capacity   int
	Collisions int
	LoadFactor float64
	// Footprint is the size in bytes of the container's own arrays.
	Footprint uintptr
}
