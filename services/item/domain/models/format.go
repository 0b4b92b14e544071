package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultWidth is the receipt width used when PrintOptions.Width is unset.
	DefaultWidth = 50

	// PriceWidth is the width of the right-aligned price column.
	PriceWidth = 10

	extraPrefix = " + "
	extraIndent = "   "
	totalLabel  = "Total"
)

// PrintOptions controls receipt rendering.
type PrintOptions struct {
	// Width is the full line width. Zero or negative means DefaultWidth.
	Width int
	// Grouped prints each item's total price (extras included) instead of its own price.
	Grouped bool
	// Detailed prints each item's extras on their own lines below it.
	Detailed bool
}

func (o PrintOptions) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// PrintLine renders the item as one fixed-width line: the name, indented
// when the item is an extra, then the price right-aligned in the last
// PriceWidth columns.
func (i *Item) PrintLine(opts PrintOptions) string {
	depth := 0
	if i.extra {
		depth = 1
	}
	return i.printRow(opts, depth)
}

// printRow renders the item at the given nesting depth: roots at 0, direct
// extras at 1, and one extra indent per further level.
func (i *Item) printRow(opts PrintOptions, depth int) string {
	label := i.Name()
	if depth > 0 {
		label = strings.Repeat(extraIndent, depth-1) + extraPrefix + label
	}
	amount := i.price
	if opts.Grouped {
		amount = i.TotalPrice()
	}
	return formatRow(label, amount, opts.width())
}

// FormatAmount renders a price with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatRow(label string, amount decimal.Decimal, width int) string {
	labelWidth := width - PriceWidth
	if labelWidth < 0 {
		labelWidth = 0
	}
	return fmt.Sprintf("%-*s%*s", labelWidth, label, PriceWidth, FormatAmount(amount))
}
