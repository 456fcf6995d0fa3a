package hash

import (
	"fmt"

	"github.com/gostonefire/inventoryindex/hashfunc"
)

// Jenkins - Name of the Jenkins one-at-a-time algorithm
const Jenkins = "jenkins"

// CRC32 - Name of the crc32 algorithm
const CRC32 = "crc32"

// New - Returns one of the internal hash algorithms by name
//   - name is either Jenkins or CRC32, an empty name selects Jenkins
//   - tableSize is the capacity of the index
func New(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch name {
	case Jenkins, "":
		hashAlgorithm = NewJenkinsHashAlgorithm(tableSize)
	case CRC32:
		hashAlgorithm = NewCRC32HashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown hash algorithm %q, use %q or %q", name, Jenkins, CRC32)
	}

	return
}

// linearProbe - Steps one slot per iteration and wraps at tableSize
func linearProbe(hf1Value, iteration, tableSize int64) int64 {
	return (hf1Value + iteration) % tableSize
}
