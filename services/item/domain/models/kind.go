package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

// Kind is a value object naming a catalog category.
type Kind string

const (
	KindTelevision         Kind = "television"
	KindConsole            Kind = "console"
	KindMicrowave          Kind = "microwave"
	KindController         Kind = "controller"
	KindControllerWireless Kind = "controller_wireless"
)

// Unbounded is the MaxExtras value for kinds with no cap on extras.
const Unbounded = -1

// kindSpec is one row of the catalog policy table.
type kindSpec struct {
	family    Kind
	label     string
	suffix    string
	price     decimal.Decimal
	wired     bool
	maxExtras int
}

// catalog is the closed set of kinds. Variants share their family's label
// and differ only through the columns they set.
var catalog = map[Kind]kindSpec{
	KindTelevision: {
		family:    KindTelevision,
		label:     "Television",
		price:     decimal.RequireFromString("150.00"),
		wired:     true,
		maxExtras: Unbounded,
	},
	KindConsole: {
		family:    KindConsole,
		label:     "Console",
		price:     decimal.RequireFromString("100.00"),
		wired:     true,
		maxExtras: 4,
	},
	KindMicrowave: {
		family:    KindMicrowave,
		label:     "Microwave",
		price:     decimal.RequireFromString("80.00"),
		wired:     true,
		maxExtras: 0,
	},
	KindController: {
		family:    KindController,
		label:     "Controller",
		price:     decimal.RequireFromString("3.00"),
		wired:     true,
		maxExtras: 0,
	},
	KindControllerWireless: {
		family:    KindController,
		label:     "Controller",
		suffix:    " (wireless)",
		price:     decimal.RequireFromString("4.00"),
		wired:     false,
		maxExtras: 0,
	},
}

// kindOrder fixes the listing order of Kinds().
var kindOrder = []Kind{
	KindTelevision,
	KindConsole,
	KindMicrowave,
	KindController,
	KindControllerWireless,
}

// ParseKind returns the Kind named by s or ErrUnknownKind.
// Matching ignores surrounding whitespace and case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := catalog[k]; !ok {
		return "", fmt.Errorf("%w: %q", itemdomain.ErrUnknownKind, s)
	}
	return k, nil
}

// Kinds returns every catalog kind in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// String returns the underlying string value.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// Family returns the kind this one refines, or k itself for root kinds.
func (k Kind) Family() Kind {
	if entry, ok := catalog[k]; ok {
		return entry.family
	}
	return k
}

// Name is the display label for items of this kind.
func (k Kind) Name() string {
	entry := catalog[k]
	return entry.label + entry.suffix
}

// DefaultPrice is the catalog price used when no override is given.
func (k Kind) DefaultPrice() decimal.Decimal {
	return catalog[k].price
}

// DefaultWired is the wiring an item of this kind is built with.
func (k Kind) DefaultWired() bool {
	return catalog[k].wired
}

// MaxExtras returns the per-kind cap on extras: 0 forbids extras and
// Unbounded removes the cap.
func MaxExtras(k Kind) int {
	entry, ok := catalog[k]
	if !ok {
		return 0
	}
	return entry.maxExtras
}
