// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/subcheck/subcheck/internal/model"
)

// VerifyRequest represents the request body for POST /verify.
type VerifyRequest struct {
	SubscriptionID string `json:"subscription_id"`
}

// VerifyResponse represents a successful verification. The subscription
// record's fields are flattened into the top level of the body.
type VerifyResponse struct {
	Success        bool   `json:"success"`
	SessionToken   string `json:"session_token"`
	ServerTime     string `json:"server_time"`
	VerificationID string `json:"verification_id"`

	*model.Subscription
}

// ErrorResponse represents an API error. Every error body shares this shape;
// SupportReference is set only on failed verification.
type ErrorResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ErrorCode        string `json:"error_code"`
	SupportReference string `json:"support_reference,omitempty"`
}
