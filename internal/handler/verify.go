package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/subcheck/subcheck/internal/audit"
	"github.com/subcheck/subcheck/internal/handler/dto"
	"github.com/subcheck/subcheck/internal/metrics"
	"github.com/subcheck/subcheck/internal/middleware"
	"github.com/subcheck/subcheck/internal/store"
	"github.com/subcheck/subcheck/internal/token"
)

// VerifyHandler orchestrates subscription verification: validated input →
// store lookup → response shaping → audit logging.
type VerifyHandler struct {
	store   *store.Store
	audit   *audit.Logger
	logger  *slog.Logger
	metrics metrics.Recorder

	// now is injectable for tests.
	now func() time.Time
}

// NewVerifyHandler creates a VerifyHandler.
func NewVerifyHandler(st *store.Store, auditLogger *audit.Logger, logger *slog.Logger, recorder metrics.Recorder) *VerifyHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &VerifyHandler{
		store:   st,
		audit:   auditLogger,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Verify handles POST /verify. The subscription ID has already been
// validated by middleware and arrives via request context. Faults anywhere
// in the sequence are caught here and converted to a SYSTEM_ERROR response
// rather than propagating to the outer recoverer.
func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	start := h.now()
	timestamp := start.UTC()
	clientAddr := middleware.ClientIP(r)

	defer func() {
		if rvr := recover(); rvr != nil {
			h.systemError(w, clientAddr, timestamp, rvr)
		}
		h.metrics.ObserveVerificationDuration(h.now().Sub(start))
	}()

	subscriptionID := middleware.SubscriptionIDFromContext(r.Context())
	if subscriptionID == "" {
		// Validator middleware was not wired in front of this handler.
		h.systemError(w, clientAddr, timestamp, errors.New("missing validated subscription ID in context"))
		return
	}

	record, err := h.store.Verify(subscriptionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.metrics.IncVerificationFailure()
			h.audit.Failure(subscriptionID, clientAddr, r.UserAgent(), timestamp)

			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
				Success:          false,
				Message:          "Invalid subscription credentials. Please verify your subscription ID.",
				ErrorCode:        "INVALID_SUBSCRIPTION",
				SupportReference: token.NewSupportReference(),
			})
			return
		}

		h.systemError(w, clientAddr, timestamp, err)
		return
	}

	sessionToken, err := token.NewSessionToken()
	if err != nil {
		h.systemError(w, clientAddr, timestamp, err)
		return
	}

	h.metrics.IncVerificationSuccess()
	h.audit.Success(subscriptionID, clientAddr, timestamp)

	writeJSON(w, http.StatusOK, dto.VerifyResponse{
		Success:        true,
		SessionToken:   sessionToken,
		ServerTime:     timestamp.Format(time.RFC3339),
		VerificationID: token.NewVerificationID(),
		Subscription:   record,
	})
}

// systemError logs an unexpected fault and writes the terminal 500 response.
func (h *VerifyHandler) systemError(w http.ResponseWriter, clientAddr string, at time.Time, fault any) {
	h.metrics.IncVerificationError()
	h.audit.SystemError(clientAddr, at, fault)

	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Success:   false,
		Message:   "System temporarily unavailable. Please try again later.",
		ErrorCode: "SYSTEM_ERROR",
	})
}
