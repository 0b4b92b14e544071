package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

// SortOrder selects the direction of ItemCollection.SortedItems.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc", "desc" or "" (asc).
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: sort order %q", itemdomain.ErrInvalidAttribute, s)
	}
}

// ItemCollection is a fixed, ordered list of top-level items priced and
// reported together. Totals are derived on every call.
type ItemCollection struct {
	items []*Item
}

// NewItemCollection returns a collection over items in the given order.
func NewItemCollection(items ...*Item) *ItemCollection {
	c := &ItemCollection{items: make([]*Item, len(items))}
	copy(c.items, items)
	return c
}

// Items returns the items in insertion order.
func (c *ItemCollection) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of top-level items.
func (c *ItemCollection) Len() int { return len(c.items) }

// SortedItems returns the items ordered by their own price. The ascending
// sort is stable, so equal prices keep insertion order; descending is the
// exact reverse of ascending.
func (c *ItemCollection) SortedItems(order SortOrder) []*Item {
	out := c.Items()
	slices.SortStableFunc(out, func(a, b *Item) int {
		return a.price.Cmp(b.price)
	})
	if order == SortDesc {
		slices.Reverse(out)
	}
	return out
}

// ItemsByType returns the items of kind k in insertion order. A family root
// such as KindController also matches its variants. The result is never nil.
func (c *ItemCollection) ItemsByType(k Kind) []*Item {
	out := []*Item{}
	for _, it := range c.items {
		if it.kind == k || (k.Family() == k && it.kind.Family() == k) {
			out = append(out, it)
		}
	}
	return out
}

// Total is the sum of every item's total price.
func (c *ItemCollection) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

// Lines renders the receipt rows: items by descending price, each followed
// by its extras when opts.Detailed is set, then a rule and the total.
// Extras of extras are listed below their parent, one indent deeper.
func (c *ItemCollection) Lines(opts PrintOptions) []string {
	width := opts.width()
	rows := make([]string, 0, len(c.items)+2)
	for _, it := range c.SortedItems(SortDesc) {
		rows = append(rows, it.printRow(opts, 0))
		if opts.Detailed {
			rows = appendExtraRows(rows, it, opts, 1)
		}
	}
	rows = append(rows, strings.Repeat("-", width))
	rows = append(rows, formatRow(totalLabel, c.Total(), width))
	return rows
}

func appendExtraRows(rows []string, it *Item, opts PrintOptions, depth int) []string {
	for _, e := range it.extras {
		rows = append(rows, e.printRow(opts, depth))
		rows = appendExtraRows(rows, e, opts, depth+1)
	}
	return rows
}

// PrintLines is Lines joined with newlines.
func (c *ItemCollection) PrintLines(opts PrintOptions) string {
	return strings.Join(c.Lines(opts), "\n")
}
