package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gostonefire/inventoryindex/invterr"
	"github.com/gostonefire/inventoryindex/sortkey"
	"github.com/pkg/errors"
)

// Operations understood in a script
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpFind   = "find"
	OpSort   = "sort"
	OpList   = "list"
	OpStat   = "stat"
	OpVerify = "verify"
)

// Command - One parsed script line
//   - Line is the 1-based line number in the script
//   - Op is one of the Op constants
//   - Name is the item name for add, remove and find
//   - Quantity is the quantity for add and remove
//   - Criterion is the sort criterion for sort
type Command struct {
	Line      int
	Op        string
	Name      string
	Quantity  int
	Criterion sortkey.Criterion
}

// arity - Number of arguments each operation takes
var arity = map[string]int{
	OpAdd:    2,
	OpRemove: 2,
	OpFind:   1,
	OpSort:   1,
	OpList:   0,
	OpStat:   0,
	OpVerify: 0,
}

// Parse - Reads a script with one operation per line. Blank lines and lines starting with # are skipped.
// Parsing stops at the first malformed line.
//
// It returns:
//   - commands is the parsed commands in script order
//   - err is of type invterr.InvalidArgument naming the offending line, or a standard error if reading fails
func Parse(r io.Reader) (commands []Command, err error) {
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var cmd Command
		if cmd, err = parseLine(line, text); err != nil {
			return
		}
		commands = append(commands, cmd)
	}

	if err = scanner.Err(); err != nil {
		err = errors.Wrap(err, "read script")
	}

	return
}

func parseLine(line int, text string) (cmd Command, err error) {
	fields := strings.Fields(text)
	cmd = Command{Line: line, Op: strings.ToLower(fields[0])}
	args := fields[1:]

	n, ok := arity[cmd.Op]
	if !ok {
		err = invterr.NewInvalidArgument("line %d: unknown operation %q", line, fields[0])
		return
	}
	if len(args) != n {
		err = invterr.NewInvalidArgument("line %d: %s takes %d argument(s), got %d", line, cmd.Op, n, len(args))
		return
	}

	switch cmd.Op {
	case OpAdd, OpRemove:
		cmd.Name = args[0]
		if cmd.Quantity, err = strconv.Atoi(args[1]); err != nil || cmd.Quantity <= 0 {
			err = invterr.NewInvalidArgument("line %d: quantity must be a positive integer, got %q", line, args[1])
			return
		}
	case OpFind:
		cmd.Name = args[0]
	case OpSort:
		if cmd.Criterion, err = sortkey.Parse(args[0]); err != nil {
			err = errors.Wrapf(err, "line %d", line)
			return
		}
	}

	return
}
