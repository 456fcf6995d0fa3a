package model

import (
	"strings"

	"github.com/gostonefire/inventoryindex/invterr"
)

// MaxItemNameLength - Max number of bytes in an item name
const MaxItemNameLength = 31

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was vacated
const SlotDeleted uint8 = 2

// Rarity - Ordinal rarity of an item, Common being the lowest
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

var rarityNames = [...]string{"COMMON", "UNCOMMON", "RARE", "EPIC", "LEGENDARY"}

// String - Returns the display name of the rarity
func (R Rarity) String() string {
	if !R.Valid() {
		return "UNKNOWN"
	}
	return rarityNames[R]
}

// Valid - Returns true if R is one of the defined rarities
func (R Rarity) Valid() bool {
	return R >= Common && R <= Legendary
}

// ParseRarity - Returns the rarity matching name, case-insensitive
func ParseRarity(name string) (rarity Rarity, err error) {
	for i, n := range rarityNames {
		if strings.EqualFold(n, name) {
			rarity = Rarity(i)
			return
		}
	}

	err = invterr.NewInvalidArgument("unknown rarity %q", name)
	return
}

// Item - Immutable definition of an item
type Item struct {
	Name   string
	Value  int
	Rarity Rarity
	Weight float64
}

// Validate - Returns an invterr.InvalidArgument if the item can not be stored
func (I Item) Validate() error {
	if err := ValidateName(I.Name); err != nil {
		return err
	}
	if !I.Rarity.Valid() {
		return invterr.NewInvalidArgument("item %q has unknown rarity %d", I.Name, int(I.Rarity))
	}

	return nil
}

// ValidateName - Returns an invterr.InvalidArgument if name is empty or longer than MaxItemNameLength
func ValidateName(name string) error {
	if name == "" {
		return invterr.NewInvalidArgument("item name can not be empty")
	}
	if len(name) > MaxItemNameLength {
		return invterr.NewInvalidArgument("item name %q is longer than %d bytes", name, MaxItemNameLength)
	}

	return nil
}

// Handle - Identifies a cell in the entry arena
type Handle int

// NilHandle - Handle that refers to no entry, used for list ends
const NilHandle Handle = -1

// Payload - The part of an entry that moves between arena cells in a payload swap
//   - Slot is the index slot registered for Item.Name, it travels with the name
type Payload struct {
	Item           Item
	Quantity       int
	InsertionOrder int64
	Slot           int64
}

// Entry - Represents one catalog record in the arena
type Entry struct {
	Payload
	Prev  Handle
	Next  Handle
	InUse bool
}

// Slot - Represents one cell of the open addressed index
type Slot struct {
	State  uint8
	Name   string
	Handle Handle
}
