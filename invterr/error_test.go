//go:build unit

package invterr

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors_Is(t *testing.T) {
	t.Run("matches on type regardless of message", func(t *testing.T) {
		// Prepare
		tests := []struct {
			err    error
			target error
		}{
			{err: NewNotFound("Sword"), target: NotFound{}},
			{err: NewTableFull("Sword", 4), target: TableFull{}},
			{err: NewInsufficientQuantity("Sword", 3, 2), target: InsufficientQuantity{}},
			{err: NewInvalidArgument("quantity must be positive, got %d", 0), target: InvalidArgument{}},
		}

		for _, test := range tests {
			// Execute
			wrapped := pkgerrors.Wrap(test.err, "context")

			// Check
			assert.ErrorIs(t, test.err, test.target, "direct match")
			assert.ErrorIs(t, wrapped, test.target, "match through pkg/errors wrap")
			assert.ErrorIs(t, fmt.Errorf("outer: %w", test.err), test.target, "match through fmt wrap")
		}
	})

	t.Run("does not match other types", func(t *testing.T) {
		// Execute
		err := NewNotFound("Sword")

		// Check
		assert.False(t, errors.Is(err, TableFull{}), "not a table full")
		assert.False(t, errors.Is(err, InvalidArgument{}), "not an invalid argument")
	})
}

func TestErrors_Error(t *testing.T) {
	t.Run("falls back to default messages", func(t *testing.T) {
		// Check
		assert.Equal(t, "not found", NotFound{}.Error())
		assert.Equal(t, "table full", TableFull{}.Error())
		assert.Equal(t, "insufficient quantity", InsufficientQuantity{}.Error())
		assert.Equal(t, "invalid argument", InvalidArgument{}.Error())
	})

	t.Run("formats detailed messages", func(t *testing.T) {
		// Check
		assert.Equal(t, `item "Bow" not found`, NewNotFound("Bow").Error())
		assert.Equal(t, `index full, no slot for "Bow" in table of capacity 4`, NewTableFull("Bow", 4).Error())
		assert.Equal(t, `cannot remove 4 of "Bow", only 3 held`, NewInsufficientQuantity("Bow", 4, 3).Error())
	})
}
