package sorting

import (
	"cmp"
	"fmt"

	"github.com/gostonefire/inventoryindex/internal/model"
	"github.com/gostonefire/inventoryindex/sortkey"
)

// List - Interface for any doubly linked entry list the sort algorithms can reorder.
// Positional algorithms exchange payloads between arena cells through SwapPayload, which must resynchronize
// any index referencing the cells as part of the swap. The merge sort relinks cells through SetHead/SetNext
// and calls RepairLinks once it is done.
type List interface {
	Len() int
	Handles() []model.Handle
	Entry(handle model.Handle) *model.Entry
	SwapPayload(a, b model.Handle) error
	Head() model.Handle
	Next(handle model.Handle) model.Handle
	SetHead(handle model.Handle)
	SetNext(handle, next model.Handle)
	RepairLinks()
}

// CompareFunc - Strict comparator returning negative if a sorts before b, positive if after and zero if equal
type CompareFunc func(a, b *model.Entry) int

// Sort - Reorders list by criterion using the algorithm assigned to it.
// An empty or single entry list is left untouched.
func Sort(list List, criterion sortkey.Criterion) (err error) {
	compare, err := Comparator(criterion)
	if err != nil {
		return
	}

	if list.Len() <= 1 {
		return
	}

	switch criterion.Algorithm() {
	case sortkey.BubbleSort:
		err = BubbleSort(list, compare)
	case sortkey.QuickSort:
		err = QuickSort(list, compare)
	case sortkey.MergeSort:
		MergeSort(list, compare)
	case sortkey.HeapSort:
		err = HeapSort(list, compare)
	}

	return
}

// Comparator - Returns the comparator for criterion
func Comparator(criterion sortkey.Criterion) (compare CompareFunc, err error) {
	switch criterion {
	case sortkey.ByValue:
		compare = byValue
	case sortkey.ByRarity:
		compare = byRarity
	case sortkey.ByWeight:
		compare = byWeight
	case sortkey.ByQuantity:
		compare = byQuantity
	case sortkey.ByInsertionOrder:
		compare = byInsertionOrder
	default:
		err = fmt.Errorf("no comparator for sort criterion %d", int(criterion))
	}

	return
}

func byValue(a, b *model.Entry) int {
	return cmp.Compare(b.Item.Value, a.Item.Value)
}

// byRarity - Legendary first, equal rarities keep insertion order
func byRarity(a, b *model.Entry) int {
	if a.Item.Rarity != b.Item.Rarity {
		return cmp.Compare(b.Item.Rarity, a.Item.Rarity)
	}
	return cmp.Compare(a.InsertionOrder, b.InsertionOrder)
}

func byWeight(a, b *model.Entry) int {
	return cmp.Compare(b.Item.Weight, a.Item.Weight)
}

func byQuantity(a, b *model.Entry) int {
	return cmp.Compare(b.Quantity, a.Quantity)
}

func byInsertionOrder(a, b *model.Entry) int {
	return cmp.Compare(a.InsertionOrder, b.InsertionOrder)
}
