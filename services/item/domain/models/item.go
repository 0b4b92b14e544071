package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

// Item is one priced catalog entry together with the extras attached to it.
//
// Price and wiring are fixed at construction. The only mutation afterwards
// is appending extras; an item attached as an extra is flagged once and
// stays flagged.
type Item struct {
	id     uuid.UUID
	kind   Kind
	price  decimal.Decimal
	wired  bool
	extra  bool
	extras []*Item
}

// ID returns the identifier generated at construction.
func (i *Item) ID() uuid.UUID { return i.id }

// Kind returns the catalog kind.
func (i *Item) Kind() Kind { return i.kind }

// Price returns the item's own price, excluding extras.
func (i *Item) Price() decimal.Decimal { return i.price }

// PriceFloat is Price as a float64.
func (i *Item) PriceFloat() float64 { return i.price.InexactFloat64() }

// IsWired reports whether the item is wired.
func (i *Item) IsWired() bool { return i.wired }

// IsExtra reports whether the item has been attached to another item.
func (i *Item) IsExtra() bool { return i.extra }

// Extras returns the attached extras in the order they were added.
func (i *Item) Extras() []*Item {
	out := make([]*Item, len(i.extras))
	copy(out, i.extras)
	return out
}

// Name returns the display label, including any variant suffix.
func (i *Item) Name() string { return i.kind.Name() }

// MaxExtras returns the cap for this item's kind. See MaxExtras.
func (i *Item) MaxExtras() int { return MaxExtras(i.kind) }

// CanHaveExtras reports whether the item's kind permits any extras.
func (i *Item) CanHaveExtras() bool { return i.MaxExtras() != 0 }

// TotalPrice returns the item's price plus the total price of every extra,
// recursively.
func (i *Item) TotalPrice() decimal.Decimal {
	total := i.price
	for _, e := range i.extras {
		total = total.Add(e.TotalPrice())
	}
	return total
}

// AddExtra attaches extra to i and marks it as an extra.
//
// Fails with ErrExtrasNotAllowed when the kind forbids extras and with
// ErrExtrasLimitExceeded when the cap is reached. Attaching nil, an item
// that is already an extra, or an item that contains i fails with
// ErrInvalidExtra.
func (i *Item) AddExtra(extra *Item) error {
	if !i.CanHaveExtras() {
		return fmt.Errorf("%w: %s cannot have any extras", itemdomain.ErrExtrasNotAllowed, i.kind)
	}
	if limit := i.MaxExtras(); limit != Unbounded && len(i.extras) >= limit {
		return fmt.Errorf("%w: %s can have a maximum of %d extras", itemdomain.ErrExtrasLimitExceeded, i.kind, limit)
	}
	if extra == nil {
		return fmt.Errorf("%w: extra must not be nil", itemdomain.ErrInvalidExtra)
	}
	if extra.extra {
		return fmt.Errorf("%w: %s is already attached as an extra", itemdomain.ErrInvalidExtra, extra.kind)
	}
	if extra == i || extra.contains(i) {
		return fmt.Errorf("%w: %s cannot contain itself", itemdomain.ErrInvalidExtra, i.kind)
	}

	extra.extra = true
	i.extras = append(i.extras, extra)
	return nil
}

// AddExtras attaches each extra in order and stops at the first failure.
// Extras attached before the failure stay attached.
func (i *Item) AddExtras(extras ...*Item) error {
	for n, e := range extras {
		if err := i.AddExtra(e); err != nil {
			return fmt.Errorf("extra %d: %w", n, err)
		}
	}
	return nil
}

// Get returns the value of a single attribute by identifier. Unknown
// identifiers fail with ErrInvalidAttribute.
func (i *Item) Get(f Field) (any, error) {
	switch f {
	case FieldKind:
		return i.kind, nil
	case FieldPrice:
		return i.price, nil
	case FieldIsWired:
		return i.wired, nil
	case FieldIsExtra:
		return i.extra, nil
	default:
		return nil, fmt.Errorf("%w: %q", itemdomain.ErrInvalidAttribute, f)
	}
}

func (i *Item) contains(target *Item) bool {
	for _, e := range i.extras {
		if e == target || e.contains(target) {
			return true
		}
	}
	return false
}
