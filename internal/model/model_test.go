//go:build unit

package model

import (
	"strings"
	"testing"

	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/stretchr/testify/assert"
)

func TestRarity(t *testing.T) {
	t.Run("names and parses every rarity", func(t *testing.T) {
		for r := Common; r <= Legendary; r++ {
			// Execute
			parsed, err := ParseRarity(strings.ToLower(r.String()))

			// Check
			assert.NoErrorf(t, err, "parse %s", r)
			assert.Equal(t, r, parsed, "round trip")
			assert.True(t, r.Valid(), "valid")
		}
	})

	t.Run("handles unknown rarities", func(t *testing.T) {
		// Execute
		_, err := ParseRarity("MYTHIC")

		// Check
		assert.ErrorIs(t, err, invterr.InvalidArgument{}, "unknown name")
		assert.Equal(t, "UNKNOWN", Rarity(7).String(), "unknown display name")
		assert.False(t, Rarity(-1).Valid(), "negative rarity")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("validates name and rarity", func(t *testing.T) {
		tests := []struct {
			name  string
			item  Item
			valid bool
		}{
			{"plain item", Item{Name: "Sword", Rarity: Common}, true},
			{"name at max length", Item{Name: strings.Repeat("x", MaxItemNameLength), Rarity: Rare}, true},
			{"empty name", Item{Name: "", Rarity: Common}, false},
			{"name too long", Item{Name: strings.Repeat("x", MaxItemNameLength+1), Rarity: Common}, false},
			{"unknown rarity", Item{Name: "Sword", Rarity: Rarity(5)}, false},
		}

		for _, tt := range tests {
			// Execute
			err := tt.item.Validate()

			// Check
			if tt.valid {
				assert.NoErrorf(t, err, "%s is valid", tt.name)
			} else {
				assert.ErrorIsf(t, err, invterr.InvalidArgument{}, "%s is invalid", tt.name)
			}
		}
	})
}
