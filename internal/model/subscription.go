// Package model defines domain entities for the application.
package model

import (
	"regexp"
	"time"
)

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "Active"
	StatusSuspended SubscriptionStatus = "Suspended"
	StatusExpired   SubscriptionStatus = "Expired"
)

// IDPattern matches valid subscription IDs: uppercase alphanumeric, 10-20 chars.
var IDPattern = regexp.MustCompile(`^[A-Z0-9]{10,20}$`)

// ValidID reports whether id matches the subscription ID format.
func ValidID(id string) bool {
	return IDPattern.MatchString(id)
}

// Subscription represents one subscription record.
//
// The identity and date fields are immutable after load. LastAccessed and
// AccessCount are the only mutable fields and are owned exclusively by the
// store; callers only ever see snapshot copies.
type Subscription struct {
	ID             string     `json:"subscription_id"`
	CreatedAt      time.Time  `json:"created_at"`
	ActivationDate time.Time  `json:"activation_date"`
	ExpirationDate time.Time  `json:"expiration_date"`
	LastAccessed   *time.Time `json:"last_accessed"`
	AccessCount    int64      `json:"access_count"`

	// IPWhitelist is carried through from the data source but is not
	// consulted by any enforcement logic.
	IPWhitelist []string `json:"ip_whitelist"`

	// Display fields are opaque pass-through data. No validation or
	// computation is performed on them.
	FullName      string             `json:"full_name"`
	Country       string             `json:"country"`
	Status        SubscriptionStatus `json:"status"`
	LicenseTier   string             `json:"license_tier"`
	LicenseStatus string             `json:"license_status"`
	UpgradeFee    string             `json:"upgrade_fee"`
	Email         string             `json:"email"`
}

// IsExpired returns true if the subscription's expiration date has passed.
func (s *Subscription) IsExpired() bool {
	return !s.ExpirationDate.IsZero() && time.Now().After(s.ExpirationDate)
}

// Clone returns a deep copy of the subscription. The store hands out clones
// so callers can never mutate owned records.
func (s *Subscription) Clone() *Subscription {
	out := *s
	if s.LastAccessed != nil {
		t := *s.LastAccessed
		out.LastAccessed = &t
	}
	if s.IPWhitelist != nil {
		out.IPWhitelist = make([]string, len(s.IPWhitelist))
		copy(out.IPWhitelist, s.IPWhitelist)
	}
	return &out
}
