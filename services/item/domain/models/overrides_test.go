package models

import (
	"errors"
	"testing"

	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

func TestParseOverrides(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		o, err := ParseOverrides(KindTelevision, nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Price != nil || o.Wired != nil {
			t.Fatalf("expected no overrides, got %+v", o)
		}
	})

	t.Run("price from JSON number", func(t *testing.T) {
		o, err := ParseOverrides(KindTelevision, map[string]any{"price": 200.0}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Price == nil || !o.Price.Equal(dec("200")) {
			t.Fatalf("unexpected price %v", o.Price)
		}
	})

	t.Run("price from YAML int and string", func(t *testing.T) {
		for _, v := range []any{199, "199.00"} {
			o, err := ParseOverrides(KindTelevision, map[string]any{"price": v}, true)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", v, err)
			}
			if !o.Price.Equal(dec("199")) {
				t.Fatalf("%v: unexpected price %s", v, o.Price)
			}
		}
	})

	t.Run("wired aliases", func(t *testing.T) {
		for _, key := range []string{"is_wired", "isWired", "wired"} {
			o, err := ParseOverrides(KindController, map[string]any{key: false}, true)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", key, err)
			}
			if o.Wired == nil || *o.Wired {
				t.Fatalf("%s: expected wired=false", key)
			}
		}
	})

	tests := []struct {
		name    string
		kind    Kind
		raw     map[string]any
		strict  bool
		wantErr bool
	}{
		{"unknown key strict", KindTelevision, map[string]any{"colour": "black"}, true, true},
		{"unknown key permissive", KindTelevision, map[string]any{"colour": "black"}, false, false},
		{"is_extra is not settable", KindTelevision, map[string]any{"is_extra": true}, true, true},
		{"negative price strict", KindTelevision, map[string]any{"price": -5}, true, true},
		{"negative price permissive", KindTelevision, map[string]any{"price": -5}, false, true},
		{"sub-cent price", KindTelevision, map[string]any{"price": 0.004}, false, true},
		{"sub-cent price string", KindTelevision, map[string]any{"price": "19.999"}, true, true},
		{"trailing zero decimals", KindTelevision, map[string]any{"price": "19.990"}, true, false},
		{"non numeric price", KindTelevision, map[string]any{"price": "cheap"}, false, true},
		{"bad wired type", KindController, map[string]any{"is_wired": []int{1}}, false, true},
		{"wired wireless strict", KindControllerWireless, map[string]any{"is_wired": true}, true, true},
		{"wired wireless permissive", KindControllerWireless, map[string]any{"is_wired": true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides(tt.kind, tt.raw, tt.strict)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, itemdomain.ErrInvalidAttribute) {
				t.Fatalf("expected ErrInvalidAttribute, got %v", err)
			}
		})
	}

	t.Run("permissive drops wired on wireless", func(t *testing.T) {
		o, err := ParseOverrides(KindControllerWireless, map[string]any{"is_wired": true, "price": 5}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Wired != nil {
			t.Fatal("wired override should be dropped")
		}
		item, err := NewOfKind(KindControllerWireless, o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.IsWired() || !item.Price().Equal(dec("5")) {
			t.Fatalf("unexpected item: wired=%v price=%s", item.IsWired(), item.Price())
		}
	})
}
