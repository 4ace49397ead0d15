package users

import (
	"time"

	"github.com/google/uuid"
)

// Marketplace roles. Shippers post loads, carriers haul them.
const (
	RoleShipper = "shipper"
	RoleCarrier = "carrier"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string
	Lastname     string
	Tel          string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'shipper'"`
	CompanyName  *string
	IsVerified   bool
	Banned       bool `gorm:"not null;default:false"`

	// Canonical paid-registration flag. Monotonic: the app only ever sets it
	// true; nothing in this codebase writes it back to false.
	RegistrationPaid   bool `gorm:"not null;default:false"`
	RegistrationPaidAt *time.Time

	ProfileUnlockPaid   bool `gorm:"not null;default:false"`
	ProfileUnlockPaidAt *time.Time

	// Audit reference of the most recent successful fee payment.
	PaymentIntentID *string `gorm:"column:payment_intent_id"`
	PaymentAmount   *int64  `gorm:"column:payment_amount"`
	PaymentCurrency *string `gorm:"column:payment_currency"`
	PaymentStatus   *string `gorm:"column:payment_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
