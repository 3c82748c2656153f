// Package token generates the opaque values issued by the verification
// endpoint. Tokens are issue-and-forget: nothing in the service stores or
// re-checks them after the response is written.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SessionTokenBytes is the entropy of a session token (hex doubles the length).
const SessionTokenBytes = 32

// SupportReferenceLen is the length of a support reference shown to clients
// on failed verification.
const SupportReferenceLen = 8

// NewSessionToken returns a 64-char hex session token.
func NewSessionToken() (string, error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NewVerificationID returns a fresh random verification identifier.
func NewVerificationID() string {
	return uuid.New().String()
}

// NewSupportReference returns a short uppercase token clients can quote to
// support. Derived from a fresh UUID, so it correlates with nothing.
func NewSupportReference() string {
	id := uuid.New().String()
	return strings.ToUpper(id[:SupportReferenceLen])
}
