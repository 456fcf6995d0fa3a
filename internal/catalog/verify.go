package catalog

import (
	"fmt"

	"github.com/gostonefire/inventoryindex/internal/model"
)

// Verify - Checks that list links and index agree with each other and returns the first violation found.
//   - every live entry is reachable from head, prev links mirror next links and tail is the last entry
//   - every live entry is found through the index under its own name, in the slot it records
//   - every occupied slot references a live entry holding the slot's name
//   - quantities are positive and insertion order numbers are unique and below the next number to assign
func (C *Catalog) Verify() (err error) {
	seen := make(map[model.Handle]bool, C.size)
	orders := make(map[int64]bool, C.size)
	prev := model.NilHandle
	count := 0

	for h := C.head; h != model.NilHandle; h = C.arena[h].Next {
		if h < 0 || int(h) >= len(C.arena) {
			return fmt.Errorf("handle %d after %d is outside the arena", h, prev)
		}
		if seen[h] {
			return fmt.Errorf("list has a cycle at handle %d", h)
		}
		seen[h] = true

		entry := C.arena[h]
		if !entry.InUse {
			return fmt.Errorf("handle %d is linked but not in use", h)
		}
		if entry.Prev != prev {
			return fmt.Errorf("handle %d has prev %d, expected %d", h, entry.Prev, prev)
		}
		if entry.Quantity <= 0 {
			return fmt.Errorf("entry %q holds quantity %d", entry.Item.Name, entry.Quantity)
		}
		if orders[entry.InsertionOrder] || entry.InsertionOrder >= C.nextOrder {
			return fmt.Errorf("entry %q has invalid insertion order %d", entry.Item.Name, entry.InsertionOrder)
		}
		orders[entry.InsertionOrder] = true

		handle, slotNo, lErr := C.index.Lookup(entry.Item.Name)
		if lErr != nil {
			return fmt.Errorf("entry %q is not reachable through the index: %s", entry.Item.Name, lErr)
		}
		if handle != h || slotNo != entry.Slot {
			return fmt.Errorf("entry %q at handle %d slot %d is indexed as handle %d slot %d",
				entry.Item.Name, h, entry.Slot, handle, slotNo)
		}

		prev = h
		count++
	}

	if prev != C.tail {
		return fmt.Errorf("tail is %d but last linked handle is %d", C.tail, prev)
	}
	if count != C.size {
		return fmt.Errorf("%d entries linked but size is %d", count, C.size)
	}
	if int64(count) != C.index.Len() {
		return fmt.Errorf("%d entries linked but %d slots occupied", count, C.index.Len())
	}
	if count+len(C.free) != len(C.arena) {
		return fmt.Errorf("%d live and %d free cells in arena of %d", count, len(C.free), len(C.arena))
	}

	for slotNo := int64(0); slotNo < C.index.Capacity(); slotNo++ {
		slot, sErr := C.index.Slot(slotNo)
		if sErr != nil {
			return sErr
		}
		if slot.State != model.SlotOccupied {
			continue
		}
		if !seen[slot.Handle] {
			return fmt.Errorf("slot %d for %q references handle %d which is not linked", slotNo, slot.Name, slot.Handle)
		}
		if name := C.arena[slot.Handle].Item.Name; name != slot.Name {
			return fmt.Errorf("slot %d holds %q but references entry %q", slotNo, slot.Name, name)
		}
	}

	return
}
