package index

import (
	"fmt"

	"github.com/gostonefire/inventoryindex/hashfunc"
	"github.com/gostonefire/inventoryindex/internal/hash"
	"github.com/gostonefire/inventoryindex/internal/model"
	"github.com/gostonefire/inventoryindex/invterr"
)

// Index - Represents a fixed capacity open addressed table mapping item names to entry handles.
// In case of a collision it probes through the table linearly (or as the hash algorithm dictates),
// looking for a free slot. Once all slots are occupied the table will accept no more names.
// Vacated slots become tombstones so that probe chains of other names are not cut short.
type Index struct {
	slots             []model.Slot
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nOccupied         int64
	nDeleted          int64
}

// Stat - Statistics on the slot usage of the index
//   - Capacity is the fixed number of slots
//   - Occupied is the number of slots holding a name
//   - Deleted is the number of vacated slots (tombstones)
//   - Empty is the number of slots never used
//   - MaxProbeLength is the longest distance from a name's start slot to the slot holding it
type Stat struct {
	Capacity       int64
	Occupied       int64
	Deleted        int64
	Empty          int64
	MaxProbeLength int64
}

// NewIndex - Returns a pointer to a new Index with all slots empty
//   - tableSize is the fixed number of slots, must be higher than 0 (zero)
//   - hashAlgorithm is an optional custom algorithm, if nil the internal Jenkins one-at-a-time algorithm is used
//
// It returns:
//   - idx is a pointer to the created Index
//   - err is of type invterr.InvalidArgument if the size is invalid or the algorithm does not honor it
func NewIndex(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (idx *Index, err error) {
	if tableSize <= 0 {
		err = invterr.NewInvalidArgument("table size must be a positive value higher than 0 (zero), got %d", tableSize)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewJenkinsHashAlgorithm(tableSize)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(tableSize)
	}

	if hashAlgorithm.GetTableSize() != tableSize {
		err = invterr.NewInvalidArgument("hash algorithm changed table size from %d to %d", tableSize, hashAlgorithm.GetTableSize())
		return
	}

	slots := make([]model.Slot, tableSize)
	for i := range slots {
		slots[i].Handle = model.NilHandle
	}

	idx = &Index{
		slots:             slots,
		tableSize:         tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Capacity - Returns the fixed number of slots
func (I *Index) Capacity() int64 {
	return I.tableSize
}

// Len - Returns the number of occupied slots
func (I *Index) Len() int64 {
	return I.nOccupied
}

// InternalAlgorithm - Returns true if the index uses the internal hash algorithm
func (I *Index) InternalAlgorithm() bool {
	return I.internalAlgorithm
}

// Lookup - Finds the slot registered for name.
//   - name is the item name to look for
//
// It returns:
//   - handle is the entry handle stored in the slot
//   - slotNo is the number of the slot holding name
//   - err is either of type invterr.NotFound or a standard error if the hash algorithm misbehaves
func (I *Index) Lookup(name string) (handle model.Handle, slotNo int64, err error) {
	start, err := I.getSlotNo(name)
	if err != nil {
		return
	}

	// Loop through at most the entire set of slots
	var probe int64
	for i := int64(0); i < I.tableSize; i++ {
		probe = I.hashAlgorithm.ProbeIteration(start, i)

		// An occupied slot with another name or a deleted slot means keep searching,
		// but an empty slot means the name can never have been added.
		slot := I.slots[probe]
		if slot.State == model.SlotOccupied && slot.Name == name {
			handle = slot.Handle
			slotNo = probe
			return
		} else if slot.State == model.SlotEmpty {
			break
		}
	}

	handle = model.NilHandle
	slotNo = -1
	err = invterr.NewNotFound(name)

	return
}

// Insert - Registers name in the first free slot of its probe sequence.
// Nothing is changed if an error is returned.
//   - name is the item name
//   - handle is the entry handle the slot will reference
//
// It returns:
//   - slotNo is the slot now holding name
//   - err is of type invterr.TableFull if there is no free slot, invterr.InvalidArgument if name is already registered
func (I *Index) Insert(name string, handle model.Handle) (slotNo int64, err error) {
	start, err := I.getSlotNo(name)
	if err != nil {
		return
	}

	// A deleted slot can be reused, but we still need to make sure name is not further down the chain.
	var deletedSlot int64
	var hasDeleted, found bool
	var probe int64
	for i := int64(0); i < I.tableSize; i++ {
		probe = I.hashAlgorithm.ProbeIteration(start, i)

		slot := I.slots[probe]
		if slot.State == model.SlotOccupied && slot.Name == name {
			slotNo = -1
			err = invterr.NewInvalidArgument("item %q is already registered in slot %d", name, probe)
			return
		} else if slot.State == model.SlotEmpty {
			slotNo = probe
			found = true
			break
		} else if !hasDeleted && slot.State == model.SlotDeleted {
			deletedSlot = probe
			hasDeleted = true
		}
	}

	if hasDeleted {
		slotNo = deletedSlot
		I.nDeleted--
	} else if !found {
		// When we have traversed through the entire set of slots we just have to face that the table is full
		slotNo = -1
		err = invterr.NewTableFull(name, I.tableSize)
		return
	}

	I.slots[slotNo] = model.Slot{State: model.SlotOccupied, Name: name, Handle: handle}
	I.nOccupied++

	return
}

// Remove - Vacates a slot by marking it as deleted
//   - slotNo is the slot to vacate, it must be occupied
func (I *Index) Remove(slotNo int64) (err error) {
	if err = I.checkOccupied(slotNo); err != nil {
		return
	}

	I.slots[slotNo] = model.Slot{State: model.SlotDeleted, Handle: model.NilHandle}
	I.nOccupied--
	I.nDeleted++

	return
}

// Retarget - Points an occupied slot at another entry handle without moving the slot or changing its name.
// It is used when the payload carrying the slot's name moves to another arena cell.
//   - slotNo is the slot to update, it must be occupied
//   - handle is the handle now holding the name stored in the slot
func (I *Index) Retarget(slotNo int64, handle model.Handle) (err error) {
	if err = I.checkOccupied(slotNo); err != nil {
		return
	}

	I.slots[slotNo].Handle = handle

	return
}

// Slot - Returns a copy of a slot
func (I *Index) Slot(slotNo int64) (slot model.Slot, err error) {
	if slotNo < 0 || slotNo >= I.tableSize {
		err = fmt.Errorf("slot number %d is outside table of size %d", slotNo, I.tableSize)
		return
	}

	slot = I.slots[slotNo]

	return
}

// Stat - Walks through all slots and produces a Stat struct
func (I *Index) Stat() (stat Stat) {
	stat.Capacity = I.tableSize
	for slotNo, slot := range I.slots {
		switch slot.State {
		case model.SlotOccupied:
			stat.Occupied++
			if d := I.probeDistance(slot.Name, int64(slotNo)); d > stat.MaxProbeLength {
				stat.MaxProbeLength = d
			}
		case model.SlotDeleted:
			stat.Deleted++
		default:
			stat.Empty++
		}
	}

	return
}

// getSlotNo - Returns the start slot for name
func (I *Index) getSlotNo(name string) (slotNo int64, err error) {
	slotNo = I.hashAlgorithm.HashFunc1([]byte(name))
	if slotNo < 0 || slotNo >= I.tableSize {
		err = fmt.Errorf("recieved slot number from hash algorithm is outside permitted range")
		return
	}

	return
}

// checkOccupied - Returns an error if slotNo is out of range or not occupied
func (I *Index) checkOccupied(slotNo int64) error {
	if slotNo < 0 || slotNo >= I.tableSize {
		return fmt.Errorf("slot number %d is outside table of size %d", slotNo, I.tableSize)
	}
	if I.slots[slotNo].State != model.SlotOccupied {
		return fmt.Errorf("slot number %d is not occupied", slotNo)
	}

	return nil
}

// probeDistance - Returns the number of probe iterations needed to reach slotNo from the start slot of name
func (I *Index) probeDistance(name string, slotNo int64) int64 {
	start, err := I.getSlotNo(name)
	if err != nil {
		return I.tableSize
	}
	for i := int64(0); i < I.tableSize; i++ {
		if I.hashAlgorithm.ProbeIteration(start, i) == slotNo {
			return i
		}
	}

	return I.tableSize
}
