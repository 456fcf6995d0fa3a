package sorting

import "github.com/gostonefire/inventoryindex/internal/model"

// MergeSort - List native merge sort. It splits the list at the middle found by slow and fast handles,
// sorts both halves recursively and merges them by relinking, taking from the left half on ties so it is stable.
// Payloads never move, so index slots stay valid. Prev links and tail are rebuilt once at the end.
func MergeSort(list List, compare CompareFunc) {
	head := mergeSort(list, list.Head(), compare)
	list.SetHead(head)
	list.RepairLinks()
}

func mergeSort(list List, head model.Handle, compare CompareFunc) model.Handle {
	if head == model.NilHandle || list.Next(head) == model.NilHandle {
		return head
	}

	middle := findMiddle(list, head)
	right := list.Next(middle)
	list.SetNext(middle, model.NilHandle)

	left := mergeSort(list, head, compare)
	right = mergeSort(list, right, compare)

	return merge(list, left, right, compare)
}

// findMiddle - Returns the last handle of the first half, the fast handle moves two steps for every step of the slow
func findMiddle(list List, head model.Handle) model.Handle {
	slow := head
	fast := list.Next(head)

	for fast != model.NilHandle {
		fast = list.Next(fast)
		if fast != model.NilHandle {
			slow = list.Next(slow)
			fast = list.Next(fast)
		}
	}

	return slow
}

// merge - Merges two sorted chains and returns the head of the result
func merge(list List, left, right model.Handle, compare CompareFunc) model.Handle {
	first, last := model.NilHandle, model.NilHandle
	link := func(h model.Handle) {
		if last == model.NilHandle {
			first = h
		} else {
			list.SetNext(last, h)
		}
		last = h
	}

	for left != model.NilHandle && right != model.NilHandle {
		if compare(list.Entry(left), list.Entry(right)) <= 0 {
			h := left
			left = list.Next(left)
			link(h)
		} else {
			h := right
			right = list.Next(right)
			link(h)
		}
	}

	// The remaining chain is already linked internally
	if left != model.NilHandle {
		link(left)
	} else if right != model.NilHandle {
		link(right)
	}

	return first
}
