package registration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentReference is the audit trail attached to a user once a fee payment
// succeeds. A newer successful payment may overwrite an older reference; the
// paid flag itself never reverts.
type PaymentReference struct {
	IntentID string
	Amount   int64
	Currency string
	Status   string
}

// ProfileStore is the paid-flag side of the user profile: an unconditional,
// idempotent "set paid" keyed by user id. No read-modify-write happens here,
// so concurrent webhook and mark-paid deliveries converge on the same state.
type ProfileStore interface {
	SetFeePaid(ctx context.Context, userID uuid.UUID, purpose string, ref PaymentReference, paidAt time.Time) error
}

// EventStore deduplicates webhook deliveries by event id. MarkProcessed
// returns false when the id was already recorded.
type EventStore interface {
	MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error)
}

// Sources of a paid-status transition. The webhook is authoritative; the
// client path exists for flows where no webhook can reach us.
const (
	SourceWebhook = "webhook"
	SourceClient  = "client"
)

// Service owns the registrationPaid / profileUnlockPaid transition.
type Service struct {
	Profiles  ProfileStore
	Payments  FeePaymentRecorder
	Processor PaymentProcessor
	Logger    *zap.Logger
	Now       func() time.Time
}

// FeePaymentRecorder persists the audit row for a successful fee payment.
type FeePaymentRecorder interface {
	RecordFeePayment(ctx context.Context, userID uuid.UUID, purpose string, ref PaymentReference, source string, profileUpdated bool) error
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ApplyPaid marks the user paid for the given purpose. It is safe to call
// repeatedly and from either source. A ProfileStoreError means the payment
// stands but the profile write failed; the caller decides how loudly to
// escalate (the webhook still acknowledges, the row lands in reconciliation).
func (s *Service) ApplyPaid(ctx context.Context, userID uuid.UUID, purpose string, ref PaymentReference, source string) error {
	paidAt := s.now()

	profileErr := s.Profiles.SetFeePaid(ctx, userID, purpose, ref, paidAt)
	if profileErr != nil {
		s.Logger.Error("PAID USER LEFT GATED: profile update failed after successful payment",
			zap.String("user_id", userID.String()),
			zap.String("purpose", purpose),
			zap.String("intent_id", ref.IntentID),
			zap.String("source", source),
			zap.Error(profileErr),
		)
	}

	if s.Payments != nil {
		if err := s.Payments.RecordFeePayment(ctx, userID, purpose, ref, source, profileErr == nil); err != nil {
			s.Logger.Error("failed to record fee payment",
				zap.String("user_id", userID.String()),
				zap.String("intent_id", ref.IntentID),
				zap.Error(err),
			)
		}
	}

	if profileErr != nil {
		return &ProfileStoreError{Err: profileErr}
	}
	return nil
}

// MarkPaid is the client-asserted fallback path. The session user must be the
// target user, and the referenced intent is checked against the processor
// before anything is written. If a webhook later disagrees, its write wins by
// being the most recent.
func (s *Service) MarkPaid(ctx context.Context, sessionUserID, targetUserID, intentID string) error {
	if targetUserID == "" {
		return &ValidationError{Msg: "missing userId"}
	}
	if sessionUserID != targetUserID {
		return &AuthorizationError{Msg: "cannot mark another user paid"}
	}
	if intentID == "" {
		return &ValidationError{Msg: "missing payment intent id"}
	}

	uid, err := uuid.Parse(targetUserID)
	if err != nil {
		return &ValidationError{Msg: "invalid userId"}
	}

	intent, err := s.Processor.GetIntent(ctx, intentID)
	if err != nil {
		return err
	}
	if intent.Status != StatusSucceeded {
		return &ValidationError{Msg: "payment has not succeeded"}
	}
	if intent.Metadata["userId"] != targetUserID {
		return &AuthorizationError{Msg: "payment intent belongs to another user"}
	}
	purpose := intent.Metadata["purpose"]
	if purpose != PurposeRegistrationFee && purpose != PurposeProfileUnlock {
		return &ValidationError{Msg: "payment intent is not a marketplace fee"}
	}

	return s.ApplyPaid(ctx, uid, purpose, PaymentReference{
		IntentID: intent.ID,
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Status:   intent.Status,
	}, SourceClient)
}
