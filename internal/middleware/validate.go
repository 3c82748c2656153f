package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/subcheck/subcheck/internal/model"
)

// subscriptionIDKey is the context key for the validated subscription ID.
const subscriptionIDKey contextKey = "subscription_id"

// verifyRequest is the expected /verify request body.
type verifyRequest struct {
	SubscriptionID string `json:"subscription_id"`
}

// ValidateSubscriptionID returns middleware that enforces presence and shape
// of the submitted subscription ID before the lookup runs. On success the
// unmodified ID is forwarded via request context; downstream handlers read
// it with SubscriptionIDFromContext.
//
// Unparseable or empty bodies are treated the same as a missing field.
func ValidateSubscriptionID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req verifyRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SubscriptionID == "" {
				writeError(w, http.StatusBadRequest,
					"MISSING_SUBSCRIPTION_ID", "Subscription ID is required.")
				return
			}

			if !model.ValidID(req.SubscriptionID) {
				writeError(w, http.StatusBadRequest,
					"INVALID_FORMAT", "Invalid subscription ID format.")
				return
			}

			ctx := context.WithValue(r.Context(), subscriptionIDKey, req.SubscriptionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubscriptionIDFromContext retrieves the validated subscription ID.
func SubscriptionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(subscriptionIDKey).(string); ok {
		return id
	}
	return ""
}
