package sortkey

import (
	"strings"

	"github.com/gostonefire/inventoryindex/invterr"
)

// Criterion - One of the total orders an inventory can be sorted by
type Criterion int

const (
	// ByValue - Monetary value, highest first
	ByValue Criterion = iota
	// ByRarity - Rarity, Legendary first, equal rarities in insertion order
	ByRarity
	// ByWeight - Weight, heaviest first
	ByWeight
	// ByQuantity - Held quantity, largest first
	ByQuantity
	// ByInsertionOrder - Order in which items were first added
	ByInsertionOrder
)

// Algorithm names as reported by Criterion.Algorithm
const (
	QuickSort  = "quicksort"
	MergeSort  = "merge sort"
	HeapSort   = "heap sort"
	BubbleSort = "bubble sort"
)

var criterionNames = [...]string{"value", "rarity", "weight", "quantity", "insertion"}

var aliases = map[string]Criterion{
	"insertion-order": ByInsertionOrder,
	"insertion_order": ByInsertionOrder,
	"order":           ByInsertionOrder,
	"qty":             ByQuantity,
}

// All - Returns every criterion in declaration order
func All() []Criterion {
	return []Criterion{ByValue, ByRarity, ByWeight, ByQuantity, ByInsertionOrder}
}

// String - Returns the name of the criterion
func (C Criterion) String() string {
	if !C.Valid() {
		return "unknown"
	}
	return criterionNames[C]
}

// Valid - Returns true if C is a defined criterion
func (C Criterion) Valid() bool {
	return C >= ByValue && C <= ByInsertionOrder
}

// Algorithm - Returns the name of the sort algorithm used for the criterion
func (C Criterion) Algorithm() string {
	switch C {
	case ByValue, ByQuantity:
		return QuickSort
	case ByRarity:
		return MergeSort
	case ByWeight:
		return HeapSort
	case ByInsertionOrder:
		return BubbleSort
	}
	return ""
}

// Stable - Returns true if the algorithm used for the criterion keeps the order of equal entries
func (C Criterion) Stable() bool {
	return C == ByRarity || C == ByInsertionOrder
}

// Parse - Returns the criterion matching name, case-insensitive
func Parse(name string) (criterion Criterion, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range criterionNames {
		if n == name {
			criterion = Criterion(i)
			return
		}
	}
	if c, ok := aliases[name]; ok {
		criterion = c
		return
	}

	err = invterr.NewInvalidArgument("unknown sort criterion %q, use one of %s", name, strings.Join(criterionNames[:], ", "))
	return
}
