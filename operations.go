package inventory

import (
	"github.com/gostonefire/inventoryindex/internal/model"
	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/gostonefire/inventoryindex/sortkey"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Add - Adds quantity of item to the inventory. If an item with the same name is already held its quantity is
// increased and the other fields of item are ignored, otherwise a new entry is appended at the end.
//   - item is the item definition, name must be non-empty and at most MaxItemNameLength bytes
//   - quantity must be higher than 0 (zero)
//
// It returns:
//   - err is of type invterr.InvalidArgument, invterr.TableFull or a standard error, nil if the item was added
func (I *Inventory) Add(item Item, quantity int) (err error) {
	created, err := I.catalog.Add(item, quantity)
	if err != nil {
		if errors.Is(err, invterr.TableFull{}) {
			I.logger.WithFields(log.Fields{"item": item.Name, "capacity": I.catalog.Capacity()}).Warn("inventory index is full")
		}
		return
	}

	I.logger.WithFields(log.Fields{"item": item.Name, "quantity": quantity, "created": created}).Debug("added item")

	return
}

// Remove - Removes quantity of the named item. When the quantity held reaches zero the item is removed from
// the inventory altogether. Nothing is changed if an error is returned.
//   - name is the item name
//   - quantity must be higher than 0 (zero) and not more than the quantity held
//
// It returns:
//   - err is of type invterr.InvalidArgument, invterr.NotFound, invterr.InsufficientQuantity or a standard error
func (I *Inventory) Remove(name string, quantity int) (err error) {
	depleted, err := I.catalog.Remove(name, quantity)
	if err != nil {
		return
	}

	I.logger.WithFields(log.Fields{"item": name, "quantity": quantity, "depleted": depleted}).Debug("removed item")

	return
}

// Find - Returns the entry held for name.
//   - name is the item name
//
// It returns:
//   - entry is a copy of the entry, zero value if not found
//   - err is of type invterr.NotFound if no item with that name is held
func (I *Inventory) Find(name string) (entry EntryView, err error) {
	e, err := I.catalog.Find(name)
	if err != nil {
		return
	}

	entry = view(e)

	return
}

// Entries - Returns copies of all entries in their current order
func (I *Inventory) Entries() (entries []EntryView) {
	all := I.catalog.Entries()
	entries = make([]EntryView, len(all))
	for i, e := range all {
		entries[i] = view(e)
	}

	return
}

// Sort - Reorders the inventory by criterion. Lookups by name keep working during and after the sort.
//   - criterion is one of the sortkey criteria, each sorted by the algorithm named by criterion.Algorithm()
//
// It returns:
//   - err is of type invterr.InvalidArgument for an unknown criterion, or a standard error
func (I *Inventory) Sort(criterion sortkey.Criterion) (err error) {
	if err = I.catalog.Sort(criterion); err != nil {
		return
	}

	I.logger.WithFields(log.Fields{
		"criterion": criterion.String(),
		"algorithm": criterion.Algorithm(),
		"entries":   I.catalog.Len(),
	}).Debug("sorted inventory")

	return
}

// CurrentSort - Returns the criterion of the last successful sort, sortkey.ByInsertionOrder for a new inventory
func (I *Inventory) CurrentSort() sortkey.Criterion {
	return I.catalog.CurrentSort()
}

// Len - Returns the number of distinct items held
func (I *Inventory) Len() int {
	return I.catalog.Len()
}

// Stat - Returns statistics on entries and index slot usage
func (I *Inventory) Stat() (stat InventoryStat) {
	s := I.catalog.IndexStat()
	stat = InventoryStat{
		Entries:        I.catalog.Len(),
		Capacity:       s.Capacity,
		Occupied:       s.Occupied,
		Deleted:        s.Deleted,
		Empty:          s.Empty,
		MaxProbeLength: s.MaxProbeLength,
	}
	for _, e := range I.catalog.Entries() {
		stat.TotalQuantity += e.Quantity
		stat.TotalValue += e.Item.Value * e.Quantity
		stat.TotalWeight += e.Item.Weight * float64(e.Quantity)
	}

	return
}

// Verify - Checks that every held item is reachable by name, that the index references only held items
// and that the order links are intact. It returns the first violation found, nil for a consistent inventory.
func (I *Inventory) Verify() (err error) {
	if err = I.catalog.Verify(); err != nil {
		err = errors.Wrap(err, "inventory is inconsistent")
	}

	return
}

func view(e model.Entry) EntryView {
	return EntryView{
		Name:           e.Item.Name,
		Item:           e.Item,
		Quantity:       e.Quantity,
		InsertionOrder: e.InsertionOrder,
	}
}
