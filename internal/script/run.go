package script

import (
	"fmt"
	"io"

	"github.com/gostonefire/inventoryindex"
	"github.com/gostonefire/inventoryindex/internal/report"
	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/gostonefire/inventoryindex/sortkey"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Inventory - The inventory operations a script can drive
type Inventory interface {
	Add(item inventory.Item, quantity int) error
	Remove(name string, quantity int) error
	Find(name string) (inventory.EntryView, error)
	Entries() []inventory.EntryView
	Sort(criterion sortkey.Criterion) error
	Stat() inventory.InventoryStat
	Verify() error
}

// ItemLookup - Resolves an item name used in a script to its definition
type ItemLookup func(name string) (item inventory.Item, ok bool)

// Runner - Executes parsed commands against an inventory and writes results to out
type Runner struct {
	inv    Inventory
	lookup ItemLookup
	out    io.Writer
	logger log.FieldLogger
}

// NewRunner - Returns a new Runner
//   - inv is the inventory to drive
//   - lookup resolves item names of add commands
//   - out receives the output of find, list and stat as well as failure reports
//   - logger is an optional logger, if nil the logrus standard logger is used
func NewRunner(inv Inventory, lookup ItemLookup, out io.Writer, logger log.FieldLogger) *Runner {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Runner{inv: inv, lookup: lookup, out: out, logger: logger}
}

// Run - Executes commands in order. A failing operation is reported and execution continues with the next one.
//
// It returns:
//   - failed is the number of commands whose operation failed
//   - err is a standard error if writing output fails, execution stops at that point
func (R *Runner) Run(commands []Command) (failed int, err error) {
	for _, cmd := range commands {
		opErr, wErr := R.exec(cmd)
		if wErr != nil {
			err = errors.Wrapf(wErr, "line %d: write output", cmd.Line)
			return
		}
		if opErr == nil {
			continue
		}

		failed++
		R.logger.WithFields(log.Fields{"line": cmd.Line, "op": cmd.Op, "item": cmd.Name}).Debug(opErr)
		if _, err = fmt.Fprintf(R.out, "line %d: %s failed: %s\n", cmd.Line, cmd.Op, opErr); err != nil {
			return
		}
	}

	return
}

// exec - Executes one command, separating operation failures from output failures
func (R *Runner) exec(cmd Command) (opErr, wErr error) {
	switch cmd.Op {
	case OpAdd:
		item, ok := R.lookup(cmd.Name)
		if !ok {
			opErr = invterr.NewInvalidArgument("no item definition named %q", cmd.Name)
			return
		}
		opErr = R.inv.Add(item, cmd.Quantity)
	case OpRemove:
		opErr = R.inv.Remove(cmd.Name, cmd.Quantity)
	case OpFind:
		var entry inventory.EntryView
		if entry, opErr = R.inv.Find(cmd.Name); opErr == nil {
			wErr = report.Entry(R.out, entry)
		}
	case OpSort:
		opErr = R.inv.Sort(cmd.Criterion)
	case OpList:
		wErr = report.Entries(R.out, R.inv.Entries())
	case OpStat:
		wErr = report.Stat(R.out, R.inv.Stat())
	case OpVerify:
		if opErr = R.inv.Verify(); opErr == nil {
			_, wErr = fmt.Fprintln(R.out, "inventory is consistent")
		}
	default:
		opErr = invterr.NewInvalidArgument("unknown operation %q", cmd.Op)
	}

	return
}
