package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/subcheck/subcheck/internal/model"
)

// seedRecord is the on-disk shape of a subscription record. Dates are
// accepted as either "2006-01-02" or full RFC 3339 timestamps, matching the
// mixed formats seen in upstream data exports.
type seedRecord struct {
	SubscriptionID string   `json:"subscription_id"`
	CreatedAt      string   `json:"created_at"`
	ActivationDate string   `json:"activation_date"`
	ExpirationDate string   `json:"expiration_date"`
	IPWhitelist    []string `json:"ip_whitelist"`
	FullName       string   `json:"full_name"`
	Country        string   `json:"country"`
	Status         string   `json:"status"`
	LicenseTier    string   `json:"license_tier"`
	LicenseStatus  string   `json:"license_status"`
	UpgradeFee     string   `json:"upgrade_fee"`
	Email          string   `json:"email"`
}

// LoadFile reads subscription records from a JSON file and builds a Store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedRecord
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	records := make([]*model.Subscription, 0, len(seeds))
	for _, seed := range seeds {
		rec, err := seed.toSubscription()
		if err != nil {
			return nil, fmt.Errorf("seed record %q: %w", seed.SubscriptionID, err)
		}
		records = append(records, rec)
	}

	return New(records)
}

func (r seedRecord) toSubscription() (*model.Subscription, error) {
	createdAt, err := parseDate(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	activation, err := parseDate(r.ActivationDate)
	if err != nil {
		return nil, fmt.Errorf("activation_date: %w", err)
	}
	expiration, err := parseDate(r.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("expiration_date: %w", err)
	}

	return &model.Subscription{
		ID:             r.SubscriptionID,
		CreatedAt:      createdAt,
		ActivationDate: activation,
		ExpirationDate: expiration,
		IPWhitelist:    r.IPWhitelist,
		FullName:       r.FullName,
		Country:        r.Country,
		Status:         model.SubscriptionStatus(r.Status),
		LicenseTier:    r.LicenseTier,
		LicenseStatus:  r.LicenseStatus,
		UpgradeFee:     r.UpgradeFee,
		Email:          r.Email,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", value)
	}
	return t, nil
}

// DefaultSeed returns the built-in demo record set used when no seed file is
// configured. All profile data here is fictional.
func DefaultSeed() []*model.Subscription {
	return []*model.Subscription{
		{
			ID:             "HYB07280EF6207",
			CreatedAt:      date(2024, 12, 31),
			ActivationDate: date(2024, 12, 31),
			ExpirationDate: date(2025, 1, 30),
			IPWhitelist:    []string{},
			FullName:       "AVERY EXAMPLE",
			Country:        "India",
			Status:         model.StatusActive,
			LicenseTier:    "BASIC LV 1",
			LicenseStatus:  "ON HOLD",
			UpgradeFee:     "$5,670",
			Email:          "avery@example.com",
		},
		{
			ID:             "HYBRUS07280EF6207",
			CreatedAt:      date(2025, 1, 7),
			ActivationDate: date(2025, 1, 7),
			ExpirationDate: date(2025, 2, 6),
			IPWhitelist:    []string{},
			FullName:       "MORGAN SAMPLE",
			Country:        "Russia",
			Status:         model.StatusActive,
			LicenseTier:    "BASIC LV 1",
			LicenseStatus:  "ON HOLD",
			UpgradeFee:     "$3,670",
			Email:          "morgan@example.com",
		},
		{
			ID:             "HYB10250GB0680",
			CreatedAt:      date(2025, 6, 23),
			ActivationDate: date(2025, 6, 23),
			ExpirationDate: date(2025, 7, 23),
			IPWhitelist:    []string{},
			FullName:       "ROBIN PLACEHOLDER",
			Country:        "United Kingdom",
			Status:         model.StatusActive,
			LicenseTier:    "BASIC LV 1",
			LicenseStatus:  "ON HOLD",
			UpgradeFee:     "£10,800.02",
			Email:          "robin@example.com",
		},
		{
			ID:             "HYB59371A4C9F2",
			CreatedAt:      date(2025, 6, 24),
			ActivationDate: date(2025, 6, 24),
			ExpirationDate: date(2025, 7, 24),
			IPWhitelist:    []string{},
			FullName:       "CASEY DEMO",
			Country:        "India",
			Status:         model.StatusActive,
			LicenseTier:    "BASIC LV 1",
			LicenseStatus:  "ON HOLD",
			UpgradeFee:     "$21,670",
			Email:          "casey@example.com",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
