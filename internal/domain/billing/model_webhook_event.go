package billing

import "time"

// WebhookEvent records every Stripe event id we have accepted. The unique
// index is what makes redelivered events a no-op: the second insert conflicts
// and the handler acknowledges without reapplying side effects.
type WebhookEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   string `gorm:"uniqueIndex;not null"`
	EventType string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}
