package stripewebhooks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"

	"haulsaver-app/internal/registration"
)

// handleIntentSucceeded applies the paid-flag transition for a succeeded
// marketplace fee. Events without our purpose metadata belong to some other
// flow and are acknowledged untouched. Errors are logged, never returned:
// the payment happened, acknowledging is the only safe answer.
func (h *Handler) handleIntentSucceeded(ctx context.Context, event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		h.Logger.Error("failed to parse payment intent from webhook",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return
	}

	purpose := pi.Metadata["purpose"]
	userID := pi.Metadata["userId"]

	if purpose != registration.PurposeRegistrationFee && purpose != registration.PurposeProfileUnlock {
		h.Logger.Info("payment intent succeeded with unrelated purpose",
			zap.String("intent_id", pi.ID),
			zap.String("purpose", purpose),
		)
		return
	}
	if userID == "" {
		h.Logger.Warn("fee payment intent missing userId metadata", zap.String("intent_id", pi.ID))
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		h.Logger.Warn("fee payment intent carries malformed userId",
			zap.String("intent_id", pi.ID),
			zap.String("user_id", userID),
		)
		return
	}

	// ProfileStoreError is already logged loudly by the service and the
	// payment row lands in the reconciliation queue.
	_ = h.Service.ApplyPaid(ctx, uid, purpose, registration.PaymentReference{
		IntentID: pi.ID,
		Amount:   pi.Amount,
		Currency: string(pi.Currency),
		Status:   string(pi.Status),
	}, registration.SourceWebhook)
}
