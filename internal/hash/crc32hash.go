package hash

import (
	"hash/crc32"
)

// CRC32HashAlgorithm - Alternative slot selection algorithm using crc32.ChecksumIEEE over the key reduced modulo
// the table size. The table size is used as given, the index capacity is fixed.
type CRC32HashAlgorithm struct {
	tableSize int64
}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm(tableSize int64) *CRC32HashAlgorithm {
	ha := &CRC32HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (C *CRC32HashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates a slot between 0 and table size - 1
func (C *CRC32HashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(crc32.ChecksumIEEE(key)) % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CRC32HashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}

// ProbeIteration - Implements Linear Probing
func (C *CRC32HashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return linearProbe(hf1Value, iteration, C.tableSize)
}
