//go:build unit

package index

import (
	"fmt"
	"testing"

	"github.com/gostonefire/inventoryindex/internal/model"
	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedHash - Test hash algorithm where every name maps to a configured start slot
type fixedHash struct {
	tableSize int64
	starts    map[string]int64
}

func (F *fixedHash) SetTableSize(tableSize int64) { F.tableSize = tableSize }
func (F *fixedHash) HashFunc1(key []byte) int64  { return F.starts[string(key)] }
func (F *fixedHash) GetTableSize() int64         { return F.tableSize }
func (F *fixedHash) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) % F.tableSize
}

// roundingHash - Test hash algorithm that refuses the given table size
type roundingHash struct {
	fixedHash
}

func (R *roundingHash) GetTableSize() int64 { return R.tableSize + 1 }

func TestNewIndex(t *testing.T) {
	t.Run("creates an index with empty slots", func(t *testing.T) {
		// Execute
		idx, err := NewIndex(16, nil)

		// Check
		require.NoError(t, err, "create new index")
		assert.Equal(t, int64(16), idx.Capacity(), "capacity preserved")
		assert.Zero(t, idx.Len(), "no occupied slots")
		assert.True(t, idx.InternalAlgorithm(), "uses internal algorithm")
		stat := idx.Stat()
		assert.Equal(t, int64(16), stat.Empty, "all slots empty")
	})

	t.Run("rejects invalid table sizes", func(t *testing.T) {
		// Execute
		_, errZero := NewIndex(0, nil)
		_, errNeg := NewIndex(-3, nil)

		// Check
		assert.ErrorIs(t, errZero, invterr.InvalidArgument{}, "zero rejected")
		assert.ErrorIs(t, errNeg, invterr.InvalidArgument{}, "negative rejected")
	})

	t.Run("rejects algorithms that change the table size", func(t *testing.T) {
		// Execute
		_, err := NewIndex(4, &roundingHash{})

		// Check
		assert.ErrorIs(t, err, invterr.InvalidArgument{}, "rounding algorithm rejected")
	})
}

func TestIndex_InsertLookup(t *testing.T) {
	t.Run("finds inserted names", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(16, nil)
		require.NoError(t, err, "create new index")
		names := []string{"Sword", "Shield", "Bow", "Axe", "Staff", "Dagger"}

		// Execute
		slots := make(map[string]int64)
		for i, name := range names {
			slotNo, err := idx.Insert(name, model.Handle(i))
			require.NoErrorf(t, err, "insert %s", name)
			slots[name] = slotNo
		}

		// Check
		for i, name := range names {
			handle, slotNo, err := idx.Lookup(name)
			assert.NoErrorf(t, err, "lookup %s", name)
			assert.Equalf(t, model.Handle(i), handle, "handle of %s", name)
			assert.Equalf(t, slots[name], slotNo, "slot of %s", name)
		}
		assert.Equal(t, int64(len(names)), idx.Len(), "occupied count")
	})

	t.Run("probes past collisions", func(t *testing.T) {
		// Prepare
		h := &fixedHash{starts: map[string]int64{"A": 2, "B": 2, "C": 2}}
		idx, err := NewIndex(4, h)
		require.NoError(t, err, "create new index")

		// Execute
		slotA, _ := idx.Insert("A", 0)
		slotB, _ := idx.Insert("B", 1)
		slotC, _ := idx.Insert("C", 2)

		// Check
		assert.Equal(t, int64(2), slotA, "A at start slot")
		assert.Equal(t, int64(3), slotB, "B at next slot")
		assert.Equal(t, int64(0), slotC, "C wrapped to slot 0")
		handle, _, err := idx.Lookup("C")
		assert.NoError(t, err, "C found after wrap")
		assert.Equal(t, model.Handle(2), handle, "C handle")
		assert.Equal(t, int64(2), idx.Stat().MaxProbeLength, "longest probe")
	})

	t.Run("reports not found for absent names", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(8, nil)
		require.NoError(t, err, "create new index")
		_, err = idx.Insert("Sword", 0)
		require.NoError(t, err, "insert")

		// Execute
		handle, slotNo, err := idx.Lookup("Shield")

		// Check
		assert.ErrorIs(t, err, invterr.NotFound{}, "not found")
		assert.Equal(t, model.NilHandle, handle, "nil handle")
		assert.Equal(t, int64(-1), slotNo, "no slot")
	})

	t.Run("terminates on a full table without match", func(t *testing.T) {
		// Prepare
		h := &fixedHash{starts: map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 1}}
		idx, err := NewIndex(4, h)
		require.NoError(t, err, "create new index")
		for i, name := range []string{"A", "B", "C", "D"} {
			_, err = idx.Insert(name, model.Handle(i))
			require.NoErrorf(t, err, "insert %s", name)
		}

		// Execute
		_, _, err = idx.Lookup("E")

		// Check
		assert.ErrorIs(t, err, invterr.NotFound{}, "wraparound ends search")
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(8, nil)
		require.NoError(t, err, "create new index")
		_, err = idx.Insert("Sword", 0)
		require.NoError(t, err, "insert")

		// Execute
		_, err = idx.Insert("Sword", 1)

		// Check
		assert.ErrorIs(t, err, invterr.InvalidArgument{}, "duplicate rejected")
		assert.Equal(t, int64(1), idx.Len(), "no extra slot used")
	})
}

func TestIndex_TableFull(t *testing.T) {
	t.Run("fails when no slot is free", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(4, nil)
		require.NoError(t, err, "create new index")
		for i := 0; i < 4; i++ {
			_, err = idx.Insert(fmt.Sprintf("item-%d", i), model.Handle(i))
			require.NoErrorf(t, err, "insert #%d", i)
		}

		// Execute
		slotNo, err := idx.Insert("item-4", 4)

		// Check
		assert.ErrorIs(t, err, invterr.TableFull{}, "table full")
		assert.Equal(t, int64(-1), slotNo, "no slot")
		assert.Equal(t, int64(4), idx.Len(), "occupied count unchanged")
		for i := 0; i < 4; i++ {
			handle, _, err := idx.Lookup(fmt.Sprintf("item-%d", i))
			assert.NoErrorf(t, err, "item-%d still found", i)
			assert.Equal(t, model.Handle(i), handle, "handle intact")
		}
	})
}

func TestIndex_Remove(t *testing.T) {
	t.Run("keeps probe chains intact over tombstones", func(t *testing.T) {
		// Prepare
		h := &fixedHash{starts: map[string]int64{"A": 1, "B": 1, "C": 1}}
		idx, err := NewIndex(4, h)
		require.NoError(t, err, "create new index")
		slotA, _ := idx.Insert("A", 0)
		_, _ = idx.Insert("B", 1)

		// Execute
		err = idx.Remove(slotA)

		// Check
		assert.NoError(t, err, "remove A")
		_, _, err = idx.Lookup("A")
		assert.ErrorIs(t, err, invterr.NotFound{}, "A gone")
		handle, slotB, err := idx.Lookup("B")
		assert.NoError(t, err, "B reachable past tombstone")
		assert.Equal(t, model.Handle(1), handle, "B handle")
		assert.Equal(t, int64(2), slotB, "B slot")

		stat := idx.Stat()
		assert.Equal(t, int64(1), stat.Occupied, "one occupied")
		assert.Equal(t, int64(1), stat.Deleted, "one tombstone")
		assert.Equal(t, int64(2), stat.Empty, "two empty")
	})

	t.Run("reuses tombstones on insert", func(t *testing.T) {
		// Prepare
		h := &fixedHash{starts: map[string]int64{"A": 1, "B": 1, "C": 1}}
		idx, err := NewIndex(4, h)
		require.NoError(t, err, "create new index")
		slotA, _ := idx.Insert("A", 0)
		_, _ = idx.Insert("B", 1)
		require.NoError(t, idx.Remove(slotA), "remove A")

		// Execute
		slotC, err := idx.Insert("C", 2)

		// Check
		assert.NoError(t, err, "insert C")
		assert.Equal(t, slotA, slotC, "C takes the tombstone")
		assert.Zero(t, idx.Stat().Deleted, "tombstone consumed")
	})

	t.Run("reuses tombstones in a full table", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(2, nil)
		require.NoError(t, err, "create new index")
		slotX, _ := idx.Insert("X", 0)
		_, _ = idx.Insert("Y", 1)
		require.NoError(t, idx.Remove(slotX), "remove X")

		// Execute
		_, err = idx.Insert("Z", 2)

		// Check
		assert.NoError(t, err, "Z fits in the tombstone")
		_, err = idx.Insert("W", 3)
		assert.ErrorIs(t, err, invterr.TableFull{}, "full again")
	})

	t.Run("rejects vacant slots", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(4, nil)
		require.NoError(t, err, "create new index")

		// Execute and Check
		assert.Error(t, idx.Remove(0), "empty slot")
		assert.Error(t, idx.Remove(9), "out of range")
	})
}

func TestIndex_Retarget(t *testing.T) {
	t.Run("points a slot at another handle", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(8, nil)
		require.NoError(t, err, "create new index")
		slotNo, err := idx.Insert("Sword", 3)
		require.NoError(t, err, "insert")

		// Execute
		err = idx.Retarget(slotNo, 5)

		// Check
		assert.NoError(t, err, "retarget")
		handle, sameSlot, err := idx.Lookup("Sword")
		assert.NoError(t, err, "lookup")
		assert.Equal(t, model.Handle(5), handle, "new handle")
		assert.Equal(t, slotNo, sameSlot, "slot did not move")
		slot, err := idx.Slot(slotNo)
		assert.NoError(t, err, "get slot")
		assert.Equal(t, "Sword", slot.Name, "name kept")
	})

	t.Run("rejects vacant slots", func(t *testing.T) {
		// Prepare
		idx, err := NewIndex(4, nil)
		require.NoError(t, err, "create new index")

		// Execute and Check
		assert.Error(t, idx.Retarget(1, 0), "empty slot")
		_, err = idx.Slot(4)
		assert.Error(t, err, "out of range")
	})
}
