package sorting

import "github.com/gostonefire/inventoryindex/internal/model"

// QuickSort - Partition exchange sort over list positions using the last position as pivot.
// Entries are moved by payload swap so handles at each position never change. It is not stable.
func QuickSort(list List, compare CompareFunc) error {
	handles := list.Handles()
	return quickSort(list, handles, 0, len(handles)-1, compare)
}

func quickSort(list List, handles []model.Handle, low, high int, compare CompareFunc) (err error) {
	if low >= high {
		return
	}

	pi, err := partition(list, handles, low, high, compare)
	if err != nil {
		return
	}
	if err = quickSort(list, handles, low, pi-1, compare); err != nil {
		return
	}
	err = quickSort(list, handles, pi+1, high, compare)

	return
}

// partition - Moves every entry not sorting after the pivot in front of it and returns the pivot's final position.
// The payload at position high is not touched until the final swap, so the pivot pointer stays valid.
func partition(list List, handles []model.Handle, low, high int, compare CompareFunc) (pi int, err error) {
	pivot := list.Entry(handles[high])
	i := low - 1

	for j := low; j < high; j++ {
		if compare(list.Entry(handles[j]), pivot) <= 0 {
			i++
			if err = list.SwapPayload(handles[i], handles[j]); err != nil {
				return
			}
		}
	}

	pi = i + 1
	err = list.SwapPayload(handles[pi], handles[high])

	return
}
