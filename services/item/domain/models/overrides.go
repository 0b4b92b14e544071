package models

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

// Field identifies one attribute of an Item for generic access.
type Field string

const (
	FieldKind    Field = "kind"
	FieldPrice   Field = "price"
	FieldIsWired Field = "is_wired"
	FieldIsExtra Field = "is_extra"
)

// settable maps accepted override keys to the attribute they set. Only price
// and wiring can be overridden at construction.
var settable = map[string]Field{
	"price":    FieldPrice,
	"is_wired": FieldIsWired,
	"isWired":  FieldIsWired,
	"wired":    FieldIsWired,
}

// Overrides carries construction-time replacements for catalog defaults.
// A nil field keeps the default.
type Overrides struct {
	Price *decimal.Decimal
	Wired *bool
}

// WithPrice returns a copy of o with Price set.
func (o Overrides) WithPrice(p decimal.Decimal) Overrides {
	o.Price = &p
	return o
}

// WithWired returns a copy of o with Wired set.
func (o Overrides) WithWired(w bool) Overrides {
	o.Wired = &w
	return o
}

// ParseOverrides converts a loosely typed option map (decoded JSON or YAML)
// into Overrides for an item of kind k.
//
// In strict mode any key that is not a settable attribute fails with
// ErrInvalidAttribute, as does asking a wireless kind to be wired.
// Otherwise both are ignored. Values of recognised keys are always type
// checked, and a negative price is always rejected.
func ParseOverrides(k Kind, raw map[string]any, strict bool) (Overrides, error) {
	var o Overrides

	// Sorted so the reported key is deterministic when several are bad.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := settable[key]
		if !ok {
			if strict {
				return Overrides{}, fmt.Errorf("%w: %q is not a settable attribute", itemdomain.ErrInvalidAttribute, key)
			}
			continue
		}

		switch field {
		case FieldPrice:
			p, err := toDecimal(raw[key])
			if err != nil {
				return Overrides{}, fmt.Errorf("%w: price: %w", itemdomain.ErrInvalidAttribute, err)
			}
			if err := checkPrice(p); err != nil {
				return Overrides{}, err
			}
			o.Price = &p
		case FieldIsWired:
			w, err := toBool(raw[key])
			if err != nil {
				return Overrides{}, fmt.Errorf("%w: is_wired: %w", itemdomain.ErrInvalidAttribute, err)
			}
			if w && !k.DefaultWired() {
				if strict {
					return Overrides{}, fmt.Errorf("%w: %s cannot be wired", itemdomain.ErrInvalidAttribute, k)
				}
				continue
			}
			o.Wired = &w
		}
	}
	return o, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	case int:
		return b != 0, nil
	case float64:
		return b != 0, nil
	default:
		return false, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// PriceDecimals is the precision prices are stored and printed at.
const PriceDecimals = 2

// checkPrice rejects negative prices and prices finer than a cent, which
// receipts could not print exactly.
func checkPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", itemdomain.ErrInvalidAttribute)
	}
	if !p.Equal(p.Round(PriceDecimals)) {
		return fmt.Errorf("%w: price %s has more than %d decimals", itemdomain.ErrInvalidAttribute, p, PriceDecimals)
	}
	return nil
}
