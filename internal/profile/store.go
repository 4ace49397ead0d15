package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"haulsaver-app/internal/domain/billing"
	"haulsaver-app/internal/domain/users"
	"haulsaver-app/internal/registration"
)

// Store implements the paid-flag side of the user profile plus webhook dedup
// and fee-payment audit rows on gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SetFeePaid flips the paid flag for the given purpose. The update is an
// unconditional set-true with fresh audit metadata, never a read-modify-write,
// so repeated or concurrent deliveries are safe and the flag stays monotonic.
func (s *Store) SetFeePaid(ctx context.Context, userID uuid.UUID, purpose string, ref registration.PaymentReference, paidAt time.Time) error {
	updates := map[string]interface{}{
		"payment_intent_id": ref.IntentID,
		"payment_amount":    ref.Amount,
		"payment_currency":  ref.Currency,
		"payment_status":    ref.Status,
	}

	switch purpose {
	case registration.PurposeRegistrationFee:
		updates["registration_paid"] = true
		updates["registration_paid_at"] = paidAt
	case registration.PurposeProfileUnlock:
		updates["profile_unlock_paid"] = true
		updates["profile_unlock_paid_at"] = paidAt
	default:
		return fmt.Errorf("unknown fee purpose %q", purpose)
	}

	res := s.db.WithContext(ctx).
		Model(&users.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

// MarkProcessed inserts the event id, reporting false when a previous
// delivery already claimed it.
func (s *Store) MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&billing.WebhookEvent{EventID: eventID, EventType: eventType})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RecordFeePayment upserts the audit row keyed by intent id. A later retry
// for the same intent refreshes status and the profile_updated flag instead
// of duplicating the row.
func (s *Store) RecordFeePayment(ctx context.Context, userID uuid.UUID, purpose string, ref registration.PaymentReference, source string, profileUpdated bool) error {
	payment := billing.FeePayment{
		UserID:          userID,
		Purpose:         purpose,
		PaymentIntentID: ref.IntentID,
		Amount:          ref.Amount,
		Currency:        ref.Currency,
		Status:          ref.Status,
		Source:          source,
		ProfileUpdated:  profileUpdated,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_intent_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "source", "profile_updated", "updated_at"}),
		}).
		Create(&payment).Error
}

// FindUser loads a user by their opaque string id.
func (s *Store) FindUser(ctx context.Context, userID string) (*users.User, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q", userID)
	}
	var user users.User
	if err := s.db.WithContext(ctx).Where("id = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s not found", userID)
		}
		return nil, err
	}
	return &user, nil
}
