package registration

import "testing"

func TestIdempotencyKey_Deterministic(t *testing.T) {
	a := IdempotencyKey("registration_fee", "production", "u1", 1000, "usd")
	b := IdempotencyKey("registration_fee", "production", "u1", 1000, "usd")
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}
	if a != "registration_fee:production:u1:1000:usd" {
		t.Errorf("unexpected key shape: %q", a)
	}
}

func TestIdempotencyKey_DistinguishesInputs(t *testing.T) {
	base := IdempotencyKey("registration_fee", "production", "u1", 1000, "usd")

	variants := map[string]string{
		"purpose":  IdempotencyKey("profile_unlock", "production", "u1", 1000, "usd"),
		"env":      IdempotencyKey("registration_fee", "test", "u1", 1000, "usd"),
		"user":     IdempotencyKey("registration_fee", "production", "u2", 1000, "usd"),
		"amount":   IdempotencyKey("registration_fee", "production", "u1", 1500, "usd"),
		"currency": IdempotencyKey("registration_fee", "production", "u1", 1000, "eur"),
	}
	for name, key := range variants {
		if key == base {
			t.Errorf("changing %s did not change the key", name)
		}
	}
}
