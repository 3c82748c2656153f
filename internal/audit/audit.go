// Package audit emits security audit events for verification attempts.
//
// Every event carries a ULID so individual attempts can be referenced when
// correlating logs with client reports.
package audit

import (
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
)

// Logger records verification outcomes as structured security events.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates an audit Logger writing through the given slog.Logger.
func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Success records a successful verification. Validation failures are never
// audited; only attempts that reached the lookup are security events.
func (a *Logger) Success(subscriptionID, clientAddr string, at time.Time) {
	a.logger.Info("verification success",
		slog.String("event", "verification_success"),
		slog.String("event_id", ulid.Make().String()),
		slog.String("subscription_id", subscriptionID),
		slog.String("client_addr", clientAddr),
		slog.String("time", at.UTC().Format(time.RFC3339)),
	)
}

// Failure records a verification attempt against an unknown subscription ID.
// The user agent is included to aid abuse correlation.
func (a *Logger) Failure(subscriptionID, clientAddr, userAgent string, at time.Time) {
	a.logger.Warn("verification failed",
		slog.String("event", "verification_failed"),
		slog.String("event_id", ulid.Make().String()),
		slog.String("subscription_id", subscriptionID),
		slog.String("client_addr", clientAddr),
		slog.String("user_agent", userAgent),
		slog.String("time", at.UTC().Format(time.RFC3339)),
	)
}

// SystemError records an unexpected fault during verification handling.
func (a *Logger) SystemError(clientAddr string, at time.Time, err any) {
	a.logger.Error("verification system error",
		slog.String("event", "verification_system_error"),
		slog.String("event_id", ulid.Make().String()),
		slog.String("client_addr", clientAddr),
		slog.String("time", at.UTC().Format(time.RFC3339)),
		slog.Any("error", err),
	)
}
