package sorting

// BubbleSort - Exchange sort of adjacent positions by payload swap. Each pass moves the last unsorted entry
// into place, and it stops after the first pass without a swap. It is stable.
func BubbleSort(list List, compare CompareFunc) (err error) {
	handles := list.Handles()

	for last := len(handles) - 1; last > 0; last-- {
		swapped := false
		for i := 0; i < last; i++ {
			if compare(list.Entry(handles[i]), list.Entry(handles[i+1])) > 0 {
				if err = list.SwapPayload(handles[i], handles[i+1]); err != nil {
					return
				}
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return
}
