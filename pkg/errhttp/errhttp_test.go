package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	procdomain "github.com/ghuser/stageops/services/procurement/domain"
	supdomain "github.com/ghuser/stageops/services/supplier/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrOrderNotFound", procdomain.ErrOrderNotFound, http.StatusNotFound},
		{"ErrItemNotFound", invdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrSupplierNotFound", supdomain.ErrSupplierNotFound, http.StatusNotFound},
		{"ErrPermissionDenied", procdomain.ErrPermissionDenied, http.StatusForbidden},
		{"ErrValidation", procdomain.ErrValidation, http.StatusUnprocessableEntity},
		{"ErrInvalidItem", invdomain.ErrInvalidItem, http.StatusUnprocessableEntity},
		{"ErrInvalidTransition", procdomain.ErrInvalidTransition, http.StatusConflict},
		{"ErrConflict", procdomain.ErrConflict, http.StatusConflict},
		{"ErrInsufficientStock", invdomain.ErrInsufficientStock, http.StatusConflict},
		{"ErrItemAlreadyExists", invdomain.ErrItemAlreadyExists, http.StatusConflict},
		{"ErrSupplierAlreadyExists", supdomain.ErrSupplierAlreadyExists, http.StatusConflict},
		{"TransitionError unwraps to conflict", procdomain.NewOrderTransitionError("pending", "delivered"), http.StatusConflict},
		{"wrapped ErrOrderNotFound", fmt.Errorf("get order: %w", procdomain.ErrOrderNotFound), http.StatusNotFound},
		{"wrapped ErrValidation", fmt.Errorf("%w: quantity must be positive", procdomain.ErrValidation), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
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
	WriteError(w, procdomain.ErrOrderNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, procdomain.ErrOrderNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
