package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gostonefire/inventoryindex"
)

func newWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Entries - Writes entries as a table in the given order followed by a totals line
func Entries(w io.Writer, entries []inventory.EntryView) (err error) {
	tw := newWriter(w)
	_, _ = fmt.Fprintln(tw, "NAME\tRARITY\tVALUE\tWEIGHT\tQTY\tORDER")

	var quantity, value int
	var weight float64
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%d\t%d\n",
			e.Name, e.Item.Rarity, e.Item.Value, e.Item.Weight, e.Quantity, e.InsertionOrder)
		quantity += e.Quantity
		value += e.Item.Value * e.Quantity
		weight += e.Item.Weight * float64(e.Quantity)
	}

	if err = tw.Flush(); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "total items: %d, total weight: %.1f, total value: %d\n", quantity, weight, value)

	return
}

// Entry - Writes a single entry on one line
func Entry(w io.Writer, e inventory.EntryView) (err error) {
	_, err = fmt.Fprintf(w, "%s: %d held, %s, value %d, weight %.1f, order %d\n",
		e.Name, e.Quantity, e.Item.Rarity, e.Item.Value, e.Item.Weight, e.InsertionOrder)

	return
}

// Stat - Writes inventory statistics as key value lines
func Stat(w io.Writer, s inventory.InventoryStat) (err error) {
	tw := newWriter(w)
	_, _ = fmt.Fprintf(tw, "entries:\t%d\n", s.Entries)
	_, _ = fmt.Fprintf(tw, "total quantity:\t%d\n", s.TotalQuantity)
	_, _ = fmt.Fprintf(tw, "total value:\t%d\n", s.TotalValue)
	_, _ = fmt.Fprintf(tw, "total weight:\t%.1f\n", s.TotalWeight)
	_, _ = fmt.Fprintf(tw, "capacity:\t%d\n", s.Capacity)
	_, _ = fmt.Fprintf(tw, "slots occupied:\t%d\n", s.Occupied)
	_, _ = fmt.Fprintf(tw, "slots deleted:\t%d\n", s.Deleted)
	_, _ = fmt.Fprintf(tw, "slots empty:\t%d\n", s.Empty)
	_, _ = fmt.Fprintf(tw, "max probe length:\t%d\n", s.MaxProbeLength)

	return tw.Flush()
}

// Items - Writes item definitions as a table
func Items(w io.Writer, items []inventory.Item) (err error) {
	tw := newWriter(w)
	_, _ = fmt.Fprintln(tw, "NAME\tRARITY\tVALUE\tWEIGHT")
	for _, i := range items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\n", i.Name, i.Rarity, i.Value, i.Weight)
	}

	return tw.Flush()
}
