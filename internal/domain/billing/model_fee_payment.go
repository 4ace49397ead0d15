package billing

import (
	"time"

	"github.com/google/uuid"

	"haulsaver-app/internal/domain/users"
)

// FeePayment is the audit row written when Stripe tells us a one-time fee
// succeeded. ProfileUpdated=false marks rows whose user-profile update failed
// after the money moved; those show up in the admin reconciliation queue.
type FeePayment struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null"`
	User            users.User
	Purpose         string `gorm:"type:varchar(40);not null;index"`
	PaymentIntentID string `gorm:"uniqueIndex;not null"`
	Amount          int64  `gorm:"not null"` // minor units
	Currency        string `gorm:"type:varchar(10);not null"`
	Status          string `gorm:"type:varchar(40);not null"`
	Source          string `gorm:"type:varchar(20);not null"` // webhook | client
	ProfileUpdated  bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
