package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const seedJSON = `[
  {
    "subscription_id": "TEST0000000001",
    "created_at": "2025-01-01",
    "activation_date": "2025-01-01",
    "expiration_date": "2025-01-31T00:00:00Z",
    "ip_whitelist": ["198.51.100.4"],
    "full_name": "SEED PERSON",
    "country": "Portugal",
    "status": "Active",
    "license_tier": "BASIC LV 1",
    "license_status": "ON HOLD",
    "upgrade_fee": "$100",
    "email": "seed@example.com"
  }
]`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subscriptions.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	s, err := LoadFile(writeSeedFile(t, seedJSON))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	rec, err := s.Verify("TEST0000000001")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if rec.FullName != "SEED PERSON" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	wantCreated := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !rec.CreatedAt.Equal(wantCreated) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, wantCreated)
	}
	wantExpiry := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	if !rec.ExpirationDate.Equal(wantExpiry) {
		t.Errorf("ExpirationDate = %v, want %v", rec.ExpirationDate, wantExpiry)
	}
	if len(rec.IPWhitelist) != 1 || rec.IPWhitelist[0] != "198.51.100.4" {
		t.Errorf("IPWhitelist = %v", rec.IPWhitelist)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{not json`},
		{"malformed id", `[{"subscription_id": "lower", "created_at": "2025-01-01"}]`},
		{"bad date", `[{"subscription_id": "TEST0000000001", "created_at": "01/01/2025"}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFile(writeSeedFile(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
