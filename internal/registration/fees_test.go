package registration

import (
	"errors"
	"testing"
)

func TestNewFees_Valid(t *testing.T) {
	fees, err := NewFees(
		Fee{Amount: 1000, Currency: "usd"},
		Fee{Amount: 499, Currency: "usd"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fee, err := fees.Resolve(FeeRegistration)
	if err != nil {
		t.Fatalf("Resolve(registration): %v", err)
	}
	if fee.Amount != 1000 || fee.Currency != "usd" || fee.Purpose != PurposeRegistrationFee {
		t.Errorf("unexpected registration fee: %+v", fee)
	}

	fee, err = fees.Resolve(FeeProfileUnlock)
	if err != nil {
		t.Fatalf("Resolve(profile-unlock): %v", err)
	}
	if fee.Amount != 499 || fee.Purpose != PurposeProfileUnlock {
		t.Errorf("unexpected profile unlock fee: %+v", fee)
	}
}

func TestNewFees_RejectsBadConfig(t *testing.T) {
	cases := []struct {
		name         string
		registration Fee
	}{
		{"zero amount", Fee{Amount: 0, Currency: "usd"}},
		{"negative amount", Fee{Amount: -5, Currency: "usd"}},
		{"uppercase currency", Fee{Amount: 1000, Currency: "USD"}},
		{"short currency", Fee{Amount: 1000, Currency: "us"}},
		{"empty currency", Fee{Amount: 1000, Currency: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFees(tc.registration, Fee{Amount: 499, Currency: "usd"})
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigurationError, got %v", err)
			}
		})
	}
}

func TestFees_ResolveUnknownType(t *testing.T) {
	fees := testFees()
	_, err := fees.Resolve(FeeType("listing-boost"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigurationError for unknown fee type, got %v", err)
	}
}
