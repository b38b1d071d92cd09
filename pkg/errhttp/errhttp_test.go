package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/atelier/pkg/httpx"
	"github.com/ghuser/atelier/services/inventory/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		code domain.Code
		want int
	}{
		{domain.CodeUnauthorized, http.StatusUnauthorized},
		{domain.CodeValidationError, http.StatusBadRequest},
		{domain.CodeInvalidCategory, http.StatusBadRequest},
		{domain.CodeInvalidStoneType, http.StatusBadRequest},
		{domain.CodeDuplicateSKU, http.StatusConflict},
		{domain.CodeDuplicateBarcode, http.StatusConflict},
		{domain.CodeInvalidStatus, http.StatusConflict},
		{domain.CodeInvalidTransition, http.StatusUnprocessableEntity},
		{domain.CodeNotFound, http.StatusNotFound},
		{domain.CodeConcurrentModification, http.StatusConflict},
		{domain.CodeDatabaseError, http.StatusInternalServerError},
		{domain.CodeUnexpectedError, http.StatusInternalServerError},
		{domain.Code("from_the_future"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.code); got != tc.want {
			t.Errorf("StatusOf(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, domain.ErrConcurrentModification)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	var env httpx.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if env.Success {
		t.Error("failure envelope must have success=false")
	}
	if env.Code != "concurrent_modification" {
		t.Errorf("code = %q, want concurrent_modification", env.Code)
	}
	if env.Error == "" {
		t.Error("error message must be present")
	}
}

func TestWriteError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("updating item: %w", domain.ErrInvalidTransition))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var env httpx.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if env.Code != "invalid_transition" {
		t.Errorf("code = %q, want invalid_transition", env.Code)
	}
}

func TestWriteError_ForeignError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("something unplanned"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var env httpx.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if env.Code != "unexpected_error" {
		t.Errorf("code = %q, want unexpected_error", env.Code)
	}
}
