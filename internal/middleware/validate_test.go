package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func validateRequest(t *testing.T, body string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var captured string
	handler := ValidateSubscriptionID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SubscriptionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Success {
		t.Error("error body success = true")
	}
	return body.ErrorCode
}

func TestValidate_MissingSubscriptionID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty value", `{"subscription_id": ""}`},
		{"empty body", ``},
		{"malformed json", `{"subscription_id": `},
		{"wrong field", `{"id": "HYB07280EF6207"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, _ := validateRequest(t, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if code := decodeErrorCode(t, rec); code != "MISSING_SUBSCRIPTION_ID" {
				t.Errorf("error_code = %q", code)
			}
		})
	}
}

func TestValidate_InvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{"lowercase", "hyb07280ef6207"},
		{"too short", "ABC123"},
		{"too long", "ABCDE12345ABCDE12345X"},
		{"punctuation", "HYB_07280EF62"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, _ := validateRequest(t, `{"subscription_id": "`+tt.id+`"}`)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if code := decodeErrorCode(t, rec); code != "INVALID_FORMAT" {
				t.Errorf("error_code = %q", code)
			}
		})
	}
}

func TestValidate_ForwardsIDUnchanged(t *testing.T) {
	t.Parallel()

	rec, captured := validateRequest(t, `{"subscription_id": "HYB07280EF6207"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured != "HYB07280EF6207" {
		t.Errorf("context subscription ID = %q", captured)
	}
}
