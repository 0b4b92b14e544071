package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/electrocart/pkg/httpx"
	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrUnknownKind", itemdomain.ErrUnknownKind, http.StatusUnprocessableEntity},
		{"ErrInvalidAttribute", itemdomain.ErrInvalidAttribute, http.StatusUnprocessableEntity},
		{"ErrInvalidExtra", itemdomain.ErrInvalidExtra, http.StatusUnprocessableEntity},
		{"ErrExtrasNotAllowed", itemdomain.ErrExtrasNotAllowed, http.StatusConflict},
		{"ErrExtrasLimitExceeded", itemdomain.ErrExtrasLimitExceeded, http.StatusConflict},
		{"ErrEmptyCart", itemdomain.ErrEmptyCart, http.StatusBadRequest},
		{"ErrBodyTooLarge", httpx.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"wrapped ErrExtrasLimitExceeded", fmt.Errorf("lines[0]: extras[4]: %w", itemdomain.ErrExtrasLimitExceeded), http.StatusConflict},
		{"wrapped ErrUnknownKind", fmt.Errorf("%w: %q", itemdomain.ErrUnknownKind, "toaster"), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("redis down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("%w: %q", itemdomain.ErrUnknownKind, "toaster"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != `unknown item kind: "toaster"` {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrEmptyCart)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteSafeError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		isProduction bool
		want         string
	}{
		{"production hides 5xx", errors.New("redis: connection refused"), true, "Internal Server Error"},
		{"production keeps 4xx", itemdomain.ErrEmptyCart, true, "cart is empty"},
		{"development shows 5xx", errors.New("redis: connection refused"), false, "redis: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteSafeError(w, tt.err, tt.isProduction)

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.want {
				t.Errorf("error = %q, want %q", body["error"], tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	if got := Status(fmt.Errorf("lines[1]: %w", itemdomain.ErrExtrasNotAllowed)); got != http.StatusConflict {
		t.Fatalf("Status = %d, want %d", got, http.StatusConflict)
	}
}
