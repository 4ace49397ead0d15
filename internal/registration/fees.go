package registration

import "fmt"

// FeeType names a gated feature's one-time fee.
type FeeType string

const (
	FeeRegistration  FeeType = "registration"
	FeeProfileUnlock FeeType = "profile-unlock"
)

// Purpose tags stamped into payment-intent metadata. They are the only link
// from a Stripe object back to what the money was for.
const (
	PurposeRegistrationFee = "registration_fee"
	PurposeProfileUnlock   = "profile_unlock"
)

type Fee struct {
	Amount      int64 // minor units
	Currency    string
	Purpose     string
	Description string
}

// Fees is the authoritative fee catalog, built once at startup from validated
// config. Amounts never come from request bodies.
type Fees struct {
	byType map[FeeType]Fee
}

func NewFees(registrationFee, profileUnlock Fee) (*Fees, error) {
	registrationFee.Purpose = PurposeRegistrationFee
	profileUnlock.Purpose = PurposeProfileUnlock

	catalog := map[FeeType]Fee{
		FeeRegistration:  registrationFee,
		FeeProfileUnlock: profileUnlock,
	}
	for feeType, fee := range catalog {
		if fee.Amount <= 0 {
			return nil, &ConfigurationError{Msg: fmt.Sprintf("fee %q: amount must be a positive integer in minor units, got %d", feeType, fee.Amount)}
		}
		if !isCurrencyCode(fee.Currency) {
			return nil, &ConfigurationError{Msg: fmt.Sprintf("fee %q: currency must be a lowercase ISO 4217 code, got %q", feeType, fee.Currency)}
		}
	}
	return &Fees{byType: catalog}, nil
}

func (f *Fees) Resolve(feeType FeeType) (Fee, error) {
	fee, ok := f.byType[feeType]
	if !ok {
		return Fee{}, &ConfigurationError{Msg: fmt.Sprintf("unknown fee type %q", feeType)}
	}
	return fee, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
