package hashtab

type entry struct {
	key   int64
	value string
}

// bucket holds the entries whose keys hash to the same index,
// in insertion order. Keys are unique within a bucket.
type bucket []entry

// lookup returns the position of key in the bucket, or -1.
func (b bucket) lookup(key int64) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}

	return -1
}
