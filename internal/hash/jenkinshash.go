package hash

// JenkinsHashAlgorithm - The default slot selection algorithm. It computes the 32-bit Jenkins one-at-a-time hash
// over the key and reduces it modulo the table size, then probes linearly.
type JenkinsHashAlgorithm struct {
	tableSize int64
}

// NewJenkinsHashAlgorithm - Returns a pointer to a new JenkinsHashAlgorithm instance
func NewJenkinsHashAlgorithm(tableSize int64) *JenkinsHashAlgorithm {
	ha := &JenkinsHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// OneAtATime - Returns the Jenkins one-at-a-time hash of key. The order of bytes matters.
func OneAtATime(key []byte) uint32 {
	var h uint32
	for _, b := range key {
		h += uint32(b)
		h += h << 10
		h ^= h >> 6
	}

	h += h << 3
	h ^= h >> 11
	h += h << 15

	return h
}

// SetTableSize - Sets the table size for the hash algorithm, the size is used as is.
func (J *JenkinsHashAlgorithm) SetTableSize(tableSize int64) {
	J.tableSize = tableSize
}

// HashFunc1 - Given key it generates a slot between 0 and table size - 1
func (J *JenkinsHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(OneAtATime(key)) % J.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (J *JenkinsHashAlgorithm) GetTableSize() int64 {
	return J.tableSize
}

// ProbeIteration - Implements Linear Probing
func (J *JenkinsHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return linearProbe(hf1Value, iteration, J.tableSize)
}
