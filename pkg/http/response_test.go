package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "stlucia/pkg/errors"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestWriteError_InvalidInput(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteError(w, apperrors.InvalidInput("Invalid kind")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	resp := decodeError(t, w)
	if resp.Error != "Invalid kind" {
		t.Errorf("expected 'Invalid kind', got %q", resp.Error)
	}
	if resp.Details != nil {
		t.Errorf("client errors should not carry a cause, got %v", resp.Details)
	}
}

func TestWriteError_InternalCarriesCause(t *testing.T) {
	w := httptest.NewRecorder()

	_ = WriteError(w, apperrors.Internal("Failed to list tours", errors.New("server selection timeout")))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decodeError(t, w)
	if resp.Details["cause"] != "server selection timeout" {
		t.Errorf("expected cause in details, got %v", resp.Details)
	}
}

func TestWriteError_PlainErrorIsInternal(t *testing.T) {
	w := httptest.NewRecorder()

	_ = WriteError(w, errors.New("boom"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decodeError(t, w)
	if resp.Error != "An unexpected error occurred" {
		t.Errorf("unexpected message %q", resp.Error)
	}
}

func TestWriteError_ValidationKeepsDetails(t *testing.T) {
	w := httptest.NewRecorder()

	_ = WriteError(w, apperrors.Validation("Invalid booking input", map[string]any{"email": "email is required"}))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	resp := decodeError(t, w)
	if resp.Details["email"] != "email is required" {
		t.Errorf("expected validation details, got %v", resp.Details)
	}
}

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	_ = WriteSuccess(w, StatusResponse{Status: StatusOK, ID: "abc"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp StatusResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.ID != "abc" {
		t.Errorf("unexpected body %+v", resp)
	}
}
