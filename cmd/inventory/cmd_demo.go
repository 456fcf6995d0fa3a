package main

import (
	"fmt"
	"io"

	"github.com/gostonefire/inventoryindex"
	"github.com/gostonefire/inventoryindex/internal/report"
	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/gostonefire/inventoryindex/sortkey"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdDemo = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in sample session",
	Long: `
The "demo" command adds and removes a few of the configured items and then sorts
the inventory by every criterion, printing the inventory after each step.
`,
	DisableAutoGenTag: true,
	Args:              cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func init() {
	cmdRoot.AddCommand(cmdDemo)
}

type demoStep struct {
	add    bool
	name   string
	amount int
}

var demoSteps = [][]demoStep{
	{{true, "Sword", 2}, {true, "Shield", 1}, {true, "Bow", 3}, {true, "Staff", 1}, {true, "Dagger", 5}},
	{{false, "Sword", 1}, {false, "Bow", 3}, {true, "Cloak", 2}},
}

var demoSorts = []sortkey.Criterion{
	sortkey.ByValue,
	sortkey.ByInsertionOrder,
	sortkey.ByRarity,
	sortkey.ByWeight,
	sortkey.ByQuantity,
}

func runDemo(out io.Writer) (err error) {
	inv, err := newInventory()
	if err != nil {
		return
	}

	for i, steps := range demoSteps {
		for _, s := range steps {
			if err = demoApply(inv, s); err != nil {
				return
			}
		}

		title := "Initial inventory"
		if i > 0 {
			title = "Updated inventory"
		}
		if err = demoPrint(out, title, inv); err != nil {
			return
		}
	}

	for _, c := range demoSorts {
		if err = inv.Sort(c); err != nil {
			return
		}
		if err = demoPrint(out, fmt.Sprintf("Sorted by %s using %s", c, c.Algorithm()), inv); err != nil {
			return
		}
	}

	return inv.Verify()
}

func demoApply(inv *inventory.Inventory, s demoStep) (err error) {
	if !s.add {
		return inv.Remove(s.name, s.amount)
	}

	item, ok := cfg.Item(s.name)
	if !ok {
		return errors.Wrap(invterr.NewInvalidArgument("no item definition named %q", s.name), "demo")
	}

	return inv.Add(item, s.amount)
}

func demoPrint(out io.Writer, title string, inv *inventory.Inventory) (err error) {
	if _, err = fmt.Fprintf(out, "\n%s:\n", title); err != nil {
		return
	}

	return report.Entries(out, inv.Entries())
}
