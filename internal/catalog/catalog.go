package catalog

import (
	"github.com/gostonefire/inventoryindex/hashfunc"
	"github.com/gostonefire/inventoryindex/internal/index"
	"github.com/gostonefire/inventoryindex/internal/model"
	"github.com/gostonefire/inventoryindex/internal/sorting"
	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/gostonefire/inventoryindex/sortkey"
	"github.com/pkg/errors"
)

// Catalog - Represents the ordered sequence of distinct entries together with the index over their names.
// Entries live in an arena and are addressed by handles, the list is linked by handles and the index maps
// names to handles. The catalog owns both, so every mutation updates them together.
type Catalog struct {
	arena       []model.Entry
	free        []model.Handle
	head        model.Handle
	tail        model.Handle
	size        int
	nextOrder   int64
	index       *index.Index
	currentSort sortkey.Criterion
}

// NewCatalog - Returns a pointer to a new empty Catalog with an index of fixed capacity
//   - capacity is the number of index slots and thereby the max number of distinct entries
//   - hashAlgorithm is an optional custom hash algorithm, nil selects the internal one
func NewCatalog(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (catalog *Catalog, err error) {
	idx, err := index.NewIndex(capacity, hashAlgorithm)
	if err != nil {
		return
	}

	catalog = &Catalog{
		arena:       make([]model.Entry, 0, capacity),
		head:        model.NilHandle,
		tail:        model.NilHandle,
		index:       idx,
		currentSort: sortkey.ByInsertionOrder,
	}

	return
}

// Add - Adds quantity of item. An existing entry with the same name has its quantity increased,
// otherwise a new entry with the next insertion order number is registered in the index and appended at the tail.
// If registration fails nothing is changed.
//   - item is the item definition, it must pass model.Item.Validate
//   - quantity must be higher than 0 (zero)
//
// It returns:
//   - created is true if a new entry was created
//   - err is of type invterr.InvalidArgument, invterr.TableFull or a standard error
func (C *Catalog) Add(item model.Item, quantity int) (created bool, err error) {
	if quantity <= 0 {
		err = invterr.NewInvalidArgument("quantity to add must be higher than 0 (zero), got %d", quantity)
		return
	}
	if err = item.Validate(); err != nil {
		return
	}

	handle, _, err := C.index.Lookup(item.Name)
	if err == nil {
		C.arena[handle].Quantity += quantity
		return
	}
	if !errors.Is(err, invterr.NotFound{}) {
		err = errors.Wrapf(err, "lookup of %q", item.Name)
		return
	}

	// Register in the index first so a full table leaves no orphan entry behind
	handle = C.peekHandle()
	slotNo, err := C.index.Insert(item.Name, handle)
	if err != nil {
		return
	}

	C.allocate(model.Entry{
		Payload: model.Payload{
			Item:           item,
			Quantity:       quantity,
			InsertionOrder: C.nextOrder,
			Slot:           slotNo,
		},
		Prev:  C.tail,
		Next:  model.NilHandle,
		InUse: true,
	})
	C.nextOrder++

	if C.tail == model.NilHandle {
		C.head = handle
	} else {
		C.arena[C.tail].Next = handle
	}
	C.tail = handle
	C.size++
	created = true

	return
}

// Remove - Removes quantity of the named item. If the quantity held reaches zero the entry is unlinked,
// its index slot vacated and its arena cell released. Nothing is changed if an error is returned.
//   - name is the item name
//   - quantity must be higher than 0 (zero) and not more than the quantity held
//
// It returns:
//   - depleted is true if the entry was removed
//   - err is of type invterr.InvalidArgument, invterr.NotFound, invterr.InsufficientQuantity or a standard error
func (C *Catalog) Remove(name string, quantity int) (depleted bool, err error) {
	if quantity <= 0 {
		err = invterr.NewInvalidArgument("quantity to remove must be higher than 0 (zero), got %d", quantity)
		return
	}
	if err = model.ValidateName(name); err != nil {
		return
	}

	handle, slotNo, err := C.index.Lookup(name)
	if err != nil {
		return
	}

	entry := &C.arena[handle]
	if entry.Quantity < quantity {
		err = invterr.NewInsufficientQuantity(name, quantity, entry.Quantity)
		return
	}

	if entry.Quantity > quantity {
		entry.Quantity -= quantity
		return
	}

	if err = C.index.Remove(slotNo); err != nil {
		err = errors.Wrapf(err, "vacate slot of %q", name)
		return
	}
	C.unlink(handle)
	C.release(handle)
	depleted = true

	return
}

// Find - Returns a copy of the entry registered for name, or an error of type invterr.NotFound
func (C *Catalog) Find(name string) (entry model.Entry, err error) {
	handle, _, err := C.index.Lookup(name)
	if err != nil {
		return
	}

	entry = C.arena[handle]

	return
}

// Entries - Returns copies of all entries in list order
func (C *Catalog) Entries() (entries []model.Entry) {
	entries = make([]model.Entry, 0, C.size)
	for h := C.head; h != model.NilHandle; h = C.arena[h].Next {
		entries = append(entries, C.arena[h])
	}

	return
}

// Sort - Reorders the catalog by criterion and records it as the current sort
func (C *Catalog) Sort(criterion sortkey.Criterion) (err error) {
	if !criterion.Valid() {
		err = invterr.NewInvalidArgument("unknown sort criterion %d", int(criterion))
		return
	}

	if err = sorting.Sort(C, criterion); err != nil {
		err = errors.Wrapf(err, "sort by %s", criterion)
		return
	}
	C.currentSort = criterion

	return
}

// CurrentSort - Returns the criterion of the last sort, ByInsertionOrder for a new catalog
func (C *Catalog) CurrentSort() sortkey.Criterion {
	return C.currentSort
}

// Capacity - Returns the index capacity
func (C *Catalog) Capacity() int64 {
	return C.index.Capacity()
}

// IndexStat - Returns slot statistics of the index
func (C *Catalog) IndexStat() index.Stat {
	return C.index.Stat()
}

// InternalAlgorithm - Returns true if the index uses the internal hash algorithm
func (C *Catalog) InternalAlgorithm() bool {
	return C.index.InternalAlgorithm()
}

// peekHandle - Returns the handle the next call to allocate will use
func (C *Catalog) peekHandle() model.Handle {
	if n := len(C.free); n > 0 {
		return C.free[n-1]
	}
	return model.Handle(len(C.arena))
}

// allocate - Stores entry in a released arena cell or appends a new one
func (C *Catalog) allocate(entry model.Entry) (handle model.Handle) {
	if n := len(C.free); n > 0 {
		handle = C.free[n-1]
		C.free = C.free[:n-1]
		C.arena[handle] = entry
		return
	}

	handle = model.Handle(len(C.arena))
	C.arena = append(C.arena, entry)

	return
}

// release - Clears an arena cell and makes it available for reuse
func (C *Catalog) release(handle model.Handle) {
	C.arena[handle] = model.Entry{Prev: model.NilHandle, Next: model.NilHandle}
	C.free = append(C.free, handle)
	C.size--
}

// unlink - Detaches the entry at handle from its neighbors, updating head and tail as needed
func (C *Catalog) unlink(handle model.Handle) {
	entry := C.arena[handle]

	if entry.Prev != model.NilHandle {
		C.arena[entry.Prev].Next = entry.Next
	} else {
		C.head = entry.Next
	}

	if entry.Next != model.NilHandle {
		C.arena[entry.Next].Prev = entry.Prev
	} else {
		C.tail = entry.Prev
	}
}
