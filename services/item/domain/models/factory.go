package models

import (
	"fmt"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

type constructor func() *Item

// registry maps every catalog kind to its constructor. It is the only way
// Items come into existence.
var registry = map[Kind]constructor{
	KindTelevision:         catalogItem(KindTelevision),
	KindConsole:            catalogItem(KindConsole),
	KindMicrowave:          catalogItem(KindMicrowave),
	KindController:         catalogItem(KindController),
	KindControllerWireless: catalogItem(KindControllerWireless),
}

func catalogItem(k Kind) constructor {
	return func() *Item {
		return &Item{
			id:    uuid.New(),
			kind:  k,
			price: k.DefaultPrice(),
			wired: k.DefaultWired(),
		}
	}
}

// New constructs an Item of the named kind with catalog defaults, then
// applies o. Unknown kinds fail with ErrUnknownKind; a negative price, a
// price finer than a cent, or a wired override on a wireless kind fails with ErrInvalidAttribute.
func New(kind string, o Overrides) (*Item, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return NewOfKind(k, o)
}

// NewOfKind is New for an already parsed Kind.
func NewOfKind(k Kind, o Overrides) (*Item, error) {
	ctor, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", itemdomain.ErrUnknownKind, k)
	}
	item := ctor()

	if o.Price != nil {
		if err := checkPrice(*o.Price); err != nil {
			return nil, err
		}
		item.price = *o.Price
	}
	if o.Wired != nil {
		if *o.Wired && !k.DefaultWired() {
			return nil, fmt.Errorf("%w: %s cannot be wired", itemdomain.ErrInvalidAttribute, k)
		}
		item.wired = *o.Wired
	}
	return item, nil
}
