package registration

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func newTestIssuer(processor PaymentProcessor) *Issuer {
	return &Issuer{
		Fees:      testFees(),
		Processor: processor,
		Env:       "test",
		Logger:    zap.NewNop(),
	}
}

func TestCreateOrReuseIntent_ReturnsClientSecret(t *testing.T) {
	processor := newFakeProcessor()
	issuer := newTestIssuer(processor)

	resp, err := issuer.CreateOrReuseIntent(context.Background(), IntentRequest{UserID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClientSecret == "" || resp.PaymentIntentID == "" {
		t.Errorf("incomplete response: %+v", resp)
	}

	intent := processor.byID[resp.PaymentIntentID]
	if intent.Metadata["purpose"] != PurposeRegistrationFee {
		t.Errorf("expected purpose metadata, got %q", intent.Metadata["purpose"])
	}
	if intent.Metadata["userId"] != "u1" {
		t.Errorf("expected userId metadata, got %q", intent.Metadata["userId"])
	}
	if intent.Amount != 1000 || intent.Currency != "usd" {
		t.Errorf("amount/currency should come from config, got %d %s", intent.Amount, intent.Currency)
	}
}

func TestCreateOrReuseIntent_DoubleSubmitYieldsOneIntent(t *testing.T) {
	processor := newFakeProcessor()
	issuer := newTestIssuer(processor)
	req := IntentRequest{UserID: "u1"}

	first, err := issuer.CreateOrReuseIntent(context.Background(), req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := issuer.CreateOrReuseIntent(context.Background(), req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.PaymentIntentID != second.PaymentIntentID {
		t.Errorf("double submit created two intents: %q vs %q", first.PaymentIntentID, second.PaymentIntentID)
	}
	if len(processor.byKey) != 1 {
		t.Errorf("expected one processor-side authorization, got %d", len(processor.byKey))
	}
}

func TestCreateOrReuseIntent_DifferentFeeTypesStaySeparate(t *testing.T) {
	processor := newFakeProcessor()
	issuer := newTestIssuer(processor)

	reg, err := issuer.CreateOrReuseIntent(context.Background(), IntentRequest{UserID: "u1", FeeType: FeeRegistration})
	if err != nil {
		t.Fatalf("registration intent: %v", err)
	}
	unlock, err := issuer.CreateOrReuseIntent(context.Background(), IntentRequest{UserID: "u1", FeeType: FeeProfileUnlock})
	if err != nil {
		t.Fatalf("profile unlock intent: %v", err)
	}

	if reg.PaymentIntentID == unlock.PaymentIntentID {
		t.Error("different fee types must not share an intent")
	}
}

func TestCreateOrReuseIntent_MissingUserID(t *testing.T) {
	issuer := newTestIssuer(newFakeProcessor())

	_, err := issuer.CreateOrReuseIntent(context.Background(), IntentRequest{})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCreateOrReuseIntent_ProcessorErrorPassthrough(t *testing.T) {
	processor := newFakeProcessor()
	processor.createErr = &ProcessorError{Msg: "payment processor unavailable", Err: errors.New("boom")}
	issuer := newTestIssuer(processor)

	_, err := issuer.CreateOrReuseIntent(context.Background(), IntentRequest{UserID: "u1"})
	var pErr *ProcessorError
	if !errors.As(err, &pErr) {
		t.Errorf("expected ProcessorError, got %v", err)
	}
}
