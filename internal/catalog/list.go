package catalog

import (
	"github.com/gostonefire/inventoryindex/internal/model"
	"github.com/pkg/errors"
)

// The methods in this file implement sorting.List

// Len - Returns the number of live entries
func (C *Catalog) Len() int {
	return C.size
}

// Handles - Returns the handles of all live entries in list order
func (C *Catalog) Handles() (handles []model.Handle) {
	handles = make([]model.Handle, 0, C.size)
	for h := C.head; h != model.NilHandle; h = C.arena[h].Next {
		handles = append(handles, h)
	}

	return
}

// Entry - Returns a pointer to the arena cell at handle
func (C *Catalog) Entry(handle model.Handle) *model.Entry {
	return &C.arena[handle]
}

// SwapPayload - Exchanges the payloads of two arena cells and points the index slots of both names at
// the cells now holding them. List links are not touched.
func (C *Catalog) SwapPayload(a, b model.Handle) (err error) {
	if a == b {
		return
	}

	ea, eb := &C.arena[a], &C.arena[b]
	ea.Payload, eb.Payload = eb.Payload, ea.Payload

	if err = C.index.Retarget(ea.Slot, a); err != nil {
		err = errors.Wrapf(err, "retarget slot of %q", ea.Item.Name)
		return
	}
	if err = C.index.Retarget(eb.Slot, b); err != nil {
		err = errors.Wrapf(err, "retarget slot of %q", eb.Item.Name)
		return
	}

	return
}

// Head - Returns the handle of the first entry
func (C *Catalog) Head() model.Handle {
	return C.head
}

// Next - Returns the handle following handle
func (C *Catalog) Next(handle model.Handle) model.Handle {
	return C.arena[handle].Next
}

// SetHead - Sets the first entry
func (C *Catalog) SetHead(handle model.Handle) {
	C.head = handle
}

// SetNext - Links next after handle
func (C *Catalog) SetNext(handle, next model.Handle) {
	C.arena[handle].Next = next
}

// RepairLinks - Rebuilds prev links and tail by walking next links from head
func (C *Catalog) RepairLinks() {
	prev := model.NilHandle
	for h := C.head; h != model.NilHandle; h = C.arena[h].Next {
		C.arena[h].Prev = prev
		prev = h
	}
	C.tail = prev
}
