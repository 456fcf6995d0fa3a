package hashfunc

// HashAlgorithm - Interface that permits a user of the inventory to supply a custom slot
// selection algorithm suited for its particular set of item names.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the inventory is created, so a table size already held by the instance will be
	// overwritten by the capacity given to the inventory.
	//   - tableSize is the number of slots the index will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates a start slot between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The index has a fixed capacity, so implementations must not round the size given in SetTableSize.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in a given probe iteration, starting from the value of HashFunc1.
	// Iteration 0 must return hf1Value and the sequence must visit every slot exactly once over
	// table size iterations, otherwise wraparound detection in the index will not hold.
	ProbeIteration(hf1Value, iteration int64) int64
}
