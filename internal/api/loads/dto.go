package loadsapi

import (
	"strings"
	"time"

	"haulsaver-app/internal/domain/loads"
	"haulsaver-app/internal/domain/users"
)

type LoadDTO struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	PickupLocation   string      `json:"pickup_location"`
	DeliveryLocation string      `json:"delivery_location"`
	PickupDate       *time.Time  `json:"pickup_date,omitempty"`
	WeightKG         float64     `json:"weight_kg"`
	PriceCents       int64       `json:"price_cents"`
	Currency         string      `json:"currency"`
	PhotoURL         *string     `json:"photo_url,omitempty"`
	Status           string      `json:"status"`
	Contact          *ContactDTO `json:"contact,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// ContactDTO is the poster's contact block, revealed only to the load's owner
// and to viewers who paid the profile-unlock fee.
type ContactDTO struct {
	Name  string `json:"name"`
	Tel   string `json:"tel,omitempty"`
	Email string `json:"email"`
}

type LoadInput struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	PickupLocation   string     `json:"pickup_location" binding:"required"`
	DeliveryLocation string     `json:"delivery_location" binding:"required"`
	PickupDate       *time.Time `json:"pickup_date"`
	WeightKG         float64    `json:"weight_kg"`
	PriceCents       int64      `json:"price_cents"`
}

func buildLoadDTO(l loads.Load) LoadDTO {
	return LoadDTO{
		ID:               l.ID.String(),
		Title:            l.Title,
		Description:      l.Description,
		PickupLocation:   l.PickupLocation,
		DeliveryLocation: l.DeliveryLocation,
		PickupDate:       l.PickupDate,
		WeightKG:         l.WeightKG,
		PriceCents:       l.PriceCents,
		Currency:         l.Currency,
		PhotoURL:         l.PhotoURL,
		Status:           l.Status,
		CreatedAt:        l.CreatedAt,
	}
}

func contactForViewer(load loads.Load, viewer *users.User) *ContactDTO {
	if viewer == nil {
		return nil
	}
	if viewer.ID != load.UserID && !users.IsProfileUnlockPaid(viewer) {
		return nil
	}
	return &ContactDTO{
		Name:  strings.TrimSpace(load.User.Name + " " + load.User.Lastname),
		Tel:   load.User.Tel,
		Email: load.User.Email,
	}
}

func buildLoadDTOs(items []loads.Load) []LoadDTO {
	out := make([]LoadDTO, 0, len(items))
	for _, l := range items {
		out = append(out, buildLoadDTO(l))
	}
	return out
}
