package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gostonefire/inventoryindex/internal/script"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdRun = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute a script of inventory operations",
	Long: `
The "run" command executes a script with one operation per line:

  add <item> <qty>      add quantity of a configured item
  remove <item> <qty>   remove quantity of a held item
  find <item>           print a held item
  sort <criterion>      value, rarity, weight, quantity or insertion
  list                  print the inventory
  stat                  print index statistics
  verify                check index and list consistency

Blank lines and lines starting with # are ignored. A malformed line stops the
run before anything is executed, a failing operation is reported and the run
continues.

EXIT STATUS
===========

Exit status is 0 if every operation succeeded, and non-zero otherwise.
`,
	DisableAutoGenTag: true,
	Args:              cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(args[0], cmd.OutOrStdout())
	},
}

func init() {
	cmdRoot.AddCommand(cmdRun)
}

func runScript(path string, out io.Writer) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer func() { _ = f.Close() }()

	commands, err := script.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	inv, err := newInventory()
	if err != nil {
		return
	}

	failed, err := script.NewRunner(inv, cfg.Item, out, logger).Run(commands)
	if err != nil {
		return
	}
	if failed > 0 {
		err = fmt.Errorf("%d of %d operation(s) failed", failed, len(commands))
	}

	return
}
