package inventory

import "github.com/gostonefire/inventoryindex/internal/model"

// Item - Immutable definition of an item, see Item.Validate for the accepted values
type Item = model.Item

// Rarity - Ordinal rarity of an item, Common being the lowest
type Rarity = model.Rarity

// Rarities in ascending order
const (
	Common    = model.Common
	Uncommon  = model.Uncommon
	Rare      = model.Rare
	Epic      = model.Epic
	Legendary = model.Legendary
)

// ParseRarity - Returns the rarity matching a display name such as "RARE", case-insensitive
func ParseRarity(name string) (Rarity, error) {
	return model.ParseRarity(name)
}

// DefaultItems - Returns the built-in item definitions
func DefaultItems() []Item {
	return []Item{
		{Name: "Sword", Value: 100, Rarity: Common, Weight: 2.5},
		{Name: "Shield", Value: 150, Rarity: Uncommon, Weight: 5.0},
		{Name: "Bow", Value: 200, Rarity: Rare, Weight: 1.5},
		{Name: "Axe", Value: 250, Rarity: Epic, Weight: 3.0},
		{Name: "Staff", Value: 300, Rarity: Legendary, Weight: 2.0},
		{Name: "Dagger", Value: 50, Rarity: Common, Weight: 1.0},
		{Name: "Mace", Value: 75, Rarity: Uncommon, Weight: 3.5},
		{Name: "GreatAxe", Value: 125, Rarity: Rare, Weight: 4.0},
		{Name: "Crossbow", Value: 175, Rarity: Epic, Weight: 2.5},
		{Name: "Cloak", Value: 225, Rarity: Legendary, Weight: 1.0},
	}
}
