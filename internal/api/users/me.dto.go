package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Payment PaymentDTO `json:"payment"`
	Access  AccessDTO  `json:"access"`
}

type UserDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Lastname    string  `json:"lastname"`
	Tel         *string `json:"tel,omitempty"`
	Role        string  `json:"role"`
	CompanyName *string `json:"company_name,omitempty"`
	IsVerified  bool    `json:"is_verified"`
}

type PaymentDTO struct {
	RegistrationPaid   bool          `json:"registrationPaid"`
	RegistrationPaidAt *time.Time    `json:"registrationPaidAt,omitempty"`
	ProfileUnlockPaid  bool          `json:"profileUnlockPaid"`
	Reference          *ReferenceDTO `json:"reference,omitempty"`
}

type ReferenceDTO struct {
	IntentID string `json:"intentId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// AccessDTO mirrors the route gate's answers so the SPA router can redirect
// without re-deriving policy client-side.
type AccessDTO struct {
	CanUseMarketplace bool   `json:"canUseMarketplace"`
	Reason            string `json:"reason"`
}
