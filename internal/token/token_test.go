package token

import (
	"regexp"
	"testing"
)

var (
	sessionTokenPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)
	uuidPattern         = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)
	supportRefPattern   = regexp.MustCompile(`^[A-Z0-9]{8}$`)
)

func TestNewSessionToken(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if !sessionTokenPattern.MatchString(tok) {
		t.Errorf("session token %q does not match expected format", tok)
	}

	other, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if tok == other {
		t.Error("two session tokens should never be equal")
	}
}

func TestNewVerificationID(t *testing.T) {
	t.Parallel()

	id := NewVerificationID()
	if !uuidPattern.MatchString(id) {
		t.Errorf("verification ID %q is not a UUID", id)
	}
	if id == NewVerificationID() {
		t.Error("two verification IDs should never be equal")
	}
}

func TestNewSupportReference(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewSupportReference()
		if !supportRefPattern.MatchString(ref) {
			t.Fatalf("support reference %q does not match ^[A-Z0-9]{8}$", ref)
		}
		seen[ref] = true
	}
	// 100 draws from a 16^8 space colliding down to a handful would mean
	// broken randomness.
	if len(seen) < 90 {
		t.Errorf("support references collide too often: %d unique of 100", len(seen))
	}
}
