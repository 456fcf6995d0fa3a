package inventory

import (
	"fmt"

	"github.com/gostonefire/inventoryindex/hashfunc"
	"github.com/gostonefire/inventoryindex/internal/catalog"
	"github.com/gostonefire/inventoryindex/internal/model"
	log "github.com/sirupsen/logrus"
)

// Conf - Configuration of a new Inventory
//   - Capacity is the fixed number of index slots and thereby the max number of distinct items held
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//   - Logger is an optional logger, if nil the logrus standard logger is used
type Conf struct {
	Capacity      int64
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        log.FieldLogger
}

// InventoryInfo - Information structure containing some information about the inventory created
//   - Capacity is the number of index slots
//   - MaxItemNameLength is the max number of bytes accepted in an item name
//   - InternalAlgorithm is true if the internal hash algorithm is in use
type InventoryInfo struct {
	Capacity          int64
	MaxItemNameLength int
	InternalAlgorithm bool
}

// InventoryStat - Statistics on the usage of the inventory
//   - Entries is the number of distinct items held
//   - TotalQuantity is the sum of all quantities held
//   - TotalValue is the sum of value times quantity over all entries
//   - TotalWeight is the sum of weight times quantity over all entries
//   - Capacity is the number of index slots
//   - Occupied is the number of index slots holding a name
//   - Deleted is the number of vacated index slots
//   - Empty is the number of index slots never used
//   - MaxProbeLength is the longest probe distance of any held name
type InventoryStat struct {
	Entries        int
	TotalQuantity  int
	TotalValue     int
	TotalWeight    float64
	Capacity       int64
	Occupied       int64
	Deleted        int64
	Empty          int64
	MaxProbeLength int64
}

// EntryView - Read only copy of one inventory entry
type EntryView struct {
	Name           string
	Item           Item
	Quantity       int
	InsertionOrder int64
}

// Inventory - The main implementation struct
type Inventory struct {
	catalog *catalog.Catalog
	logger  log.FieldLogger
}

// NewInventory - Returns a new empty inventory with an index of fixed capacity.
// Names hashing to occupied slots are placed by linear probing, so all capacity slots can be used
// but a full table accepts no further distinct names.
//   - conf is the inventory configuration, see Conf
//
// It returns:
//   - inventory is a pointer to an Inventory struct
//   - info is an InventoryInfo struct containing some data regarding the inventory created
//   - err is of type invterr.InvalidArgument or a standard error, nil if everything went ok
func NewInventory(conf Conf) (inventory *Inventory, info InventoryInfo, err error) {
	c, err := catalog.NewCatalog(conf.Capacity, conf.HashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating inventory: %w", err)
		return
	}

	logger := conf.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	inventory = &Inventory{
		catalog: c,
		logger:  logger,
	}

	info = InventoryInfo{
		Capacity:          c.Capacity(),
		MaxItemNameLength: model.MaxItemNameLength,
		InternalAlgorithm: c.InternalAlgorithm(),
	}

	return
}
