package sorting

import "github.com/gostonefire/inventoryindex/internal/model"

// HeapSort - Builds a max heap over list positions by comparator and repeatedly moves the root to the end
// of the shrinking heap by payload swap. It is not stable.
func HeapSort(list List, compare CompareFunc) (err error) {
	handles := list.Handles()
	n := len(handles)

	for i := n/2 - 1; i >= 0; i-- {
		if err = siftDown(list, handles, i, n, compare); err != nil {
			return
		}
	}

	for i := n - 1; i > 0; i-- {
		if err = list.SwapPayload(handles[0], handles[i]); err != nil {
			return
		}
		if err = siftDown(list, handles, 0, i, compare); err != nil {
			return
		}
	}

	return
}

// siftDown - Sinks the entry at position i toward the leaves of the heap of size n
func siftDown(list List, handles []model.Handle, i, n int, compare CompareFunc) (err error) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && compare(list.Entry(handles[left]), list.Entry(handles[largest])) > 0 {
			largest = left
		}
		if right < n && compare(list.Entry(handles[right]), list.Entry(handles[largest])) > 0 {
			largest = right
		}
		if largest == i {
			return
		}

		if err = list.SwapPayload(handles[i], handles[largest]); err != nil {
			return
		}
		i = largest
	}
}
