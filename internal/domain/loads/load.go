package loads

import (
	"time"

	"github.com/google/uuid"

	"haulsaver-app/internal/domain/users"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
)

// Load is a freight listing a shipper posts for carriers to bid on.
type Load struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`
	User   users.User

	Title       string `gorm:"not null"`
	Description string

	PickupLocation   string `gorm:"not null"`
	DeliveryLocation string `gorm:"not null"`
	PickupDate       *time.Time

	WeightKG   float64
	PriceCents int64  `gorm:"not null;default:0"`
	Currency   string `gorm:"type:varchar(10);not null;default:'usd'"`

	PhotoURL *string

	Status string `gorm:"type:varchar(20);not null;default:'draft';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Load) IsPublished() bool {
	return l.Status == StatusPublished
}
