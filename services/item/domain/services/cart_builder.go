// Package services contains stateless domain services for the item bounded context.
// Domain services turn plain cart descriptions into domain objects and have
// zero external dependencies beyond the domain layer.
package services

import (
	"fmt"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
	"github.com/ghuser/electrocart/services/item/domain/models"
)

// MaxLineDepth bounds how deeply extras may nest in a LineSpec tree.
const MaxLineDepth = 3

// LineSpec describes one item to build: its kind, optional construction
// overrides, and the extras to attach in order.
type LineSpec struct {
	Kind      string         `json:"kind"                yaml:"kind"`
	Overrides map[string]any `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Extras    []LineSpec     `json:"extras,omitempty"    yaml:"extras,omitempty"`
}

// BuildItem constructs the item described by line and attaches its extras.
//
// Extras are attached in order and building stops at the first failure.
// Errors carry the path of the offending line, e.g. "extras[2]: ...".
// strict selects rejection (true) or silent ignore (false) of unknown
// override keys.
func BuildItem(line LineSpec, strict bool) (*models.Item, error) {
	return buildItem(line, strict, 1)
}

func buildItem(line LineSpec, strict bool, depth int) (*models.Item, error) {
	if depth > MaxLineDepth {
		return nil, fmt.Errorf("%w: extras nested deeper than %d levels", itemdomain.ErrInvalidExtra, MaxLineDepth)
	}

	kind, err := models.ParseKind(line.Kind)
	if err != nil {
		return nil, err
	}
	overrides, err := models.ParseOverrides(kind, line.Overrides, strict)
	if err != nil {
		return nil, err
	}
	item, err := models.NewOfKind(kind, overrides)
	if err != nil {
		return nil, err
	}

	for n, extraLine := range line.Extras {
		extra, err := buildItem(extraLine, strict, depth+1)
		if err != nil {
			return nil, fmt.Errorf("extras[%d]: %w", n, err)
		}
		if err := item.AddExtra(extra); err != nil {
			return nil, fmt.Errorf("extras[%d]: %w", n, err)
		}
	}
	return item, nil
}

// BuildCollection builds every line into a collection, in order. An empty
// cart fails with ErrEmptyCart.
func BuildCollection(lines []LineSpec, strict bool) (*models.ItemCollection, error) {
	if len(lines) == 0 {
		return nil, itemdomain.ErrEmptyCart
	}
	items := make([]*models.Item, 0, len(lines))
	for n, line := range lines {
		item, err := BuildItem(line, strict)
		if err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", n, err)
		}
		items = append(items, item)
	}
	return models.NewItemCollection(items...), nil
}

// DemoCart returns the reference cart: a console with two wired and two
// wireless controllers, a television with two wireless controllers, a
// television priced 200 with one controller, and a microwave.
func DemoCart() []LineSpec {
	return []LineSpec{
		{
			Kind: models.KindConsole.String(),
			Extras: []LineSpec{
				{Kind: models.KindController.String()},
				{Kind: models.KindController.String()},
				{Kind: models.KindControllerWireless.String()},
				{Kind: models.KindControllerWireless.String()},
			},
		},
		{
			Kind: models.KindTelevision.String(),
			Extras: []LineSpec{
				{Kind: models.KindControllerWireless.String()},
				{Kind: models.KindControllerWireless.String()},
			},
		},
		{
			Kind:      models.KindTelevision.String(),
			Overrides: map[string]any{"price": 200},
			Extras: []LineSpec{
				{Kind: models.KindController.String()},
			},
		},
		{Kind: models.KindMicrowave.String()},
	}
}

// CountExtras returns the number of extras attached anywhere in c.
func CountExtras(c *models.ItemCollection) int {
	var count func(items []*models.Item) int
	count = func(items []*models.Item) int {
		n := 0
		for _, it := range items {
			extras := it.Extras()
			n += len(extras) + count(extras)
		}
		return n
	}
	return count(c.Items())
}
