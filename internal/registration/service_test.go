package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestService(store *fakeProfileStore, log *fakePaymentLog, processor PaymentProcessor) *Service {
	return &Service{
		Profiles:  store,
		Payments:  log,
		Processor: processor,
		Logger:    zap.NewNop(),
	}
}

func succeededIntent(processor *fakeProcessor, userID string) *Intent {
	intent := &Intent{
		ID:           "pi_done",
		ClientSecret: "pi_done_secret",
		Status:       StatusSucceeded,
		Amount:       1000,
		Currency:     "usd",
		Metadata: map[string]string{
			"purpose": PurposeRegistrationFee,
			"userId":  userID,
		},
	}
	processor.byID[intent.ID] = intent
	return intent
}

func TestApplyPaid_UpdatesProfileAndRecordsPayment(t *testing.T) {
	store := newFakeProfileStore()
	log := &fakePaymentLog{}
	svc := newTestService(store, log, newFakeProcessor())
	uid := uuid.New()

	ref := PaymentReference{IntentID: "pi_1", Amount: 1000, Currency: "usd", Status: "succeeded"}
	if err := svc.ApplyPaid(context.Background(), uid, PurposeRegistrationFee, ref, SourceWebhook); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !store.isPaid(uid, PurposeRegistrationFee) {
		t.Error("profile store was not updated")
	}
	if len(log.records) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(log.records))
	}
	rec := log.records[0]
	if !rec.profileUpdated || rec.source != SourceWebhook || rec.ref.IntentID != "pi_1" {
		t.Errorf("unexpected payment record: %+v", rec)
	}
}

func TestApplyPaid_Idempotent(t *testing.T) {
	store := newFakeProfileStore()
	svc := newTestService(store, &fakePaymentLog{}, newFakeProcessor())
	uid := uuid.New()
	ref := PaymentReference{IntentID: "pi_1", Amount: 1000, Currency: "usd", Status: "succeeded"}

	for i := 0; i < 3; i++ {
		if err := svc.ApplyPaid(context.Background(), uid, PurposeRegistrationFee, ref, SourceWebhook); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	// Still paid; repeated application never reverts the flag.
	if !store.isPaid(uid, PurposeRegistrationFee) {
		t.Error("flag lost after repeated application")
	}
}

func TestApplyPaid_ProfileStoreFailure(t *testing.T) {
	store := newFakeProfileStore()
	store.err = errors.New("profile api down")
	log := &fakePaymentLog{}
	svc := newTestService(store, log, newFakeProcessor())

	err := svc.ApplyPaid(context.Background(), uuid.New(), PurposeRegistrationFee,
		PaymentReference{IntentID: "pi_1", Status: "succeeded"}, SourceWebhook)

	var storeErr *ProfileStoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected ProfileStoreError, got %v", err)
	}
	// The payment row must still land, flagged for reconciliation.
	if len(log.records) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(log.records))
	}
	if log.records[0].profileUpdated {
		t.Error("record should be marked as needing reconciliation")
	}
}

func TestMarkPaid_RejectsOtherUsers(t *testing.T) {
	store := newFakeProfileStore()
	processor := newFakeProcessor()
	svc := newTestService(store, &fakePaymentLog{}, processor)
	target := uuid.New().String()
	succeededIntent(processor, target)

	err := svc.MarkPaid(context.Background(), uuid.New().String(), target, "pi_done")
	var aErr *AuthorizationError
	if !errors.As(err, &aErr) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
	if store.setCalls != 0 {
		t.Error("profile store must not be touched on authorization failure")
	}
}

func TestMarkPaid_RejectsForeignIntent(t *testing.T) {
	store := newFakeProfileStore()
	processor := newFakeProcessor()
	svc := newTestService(store, &fakePaymentLog{}, processor)
	sessionUser := uuid.New().String()
	// The intent belongs to somebody else.
	succeededIntent(processor, uuid.New().String())

	err := svc.MarkPaid(context.Background(), sessionUser, sessionUser, "pi_done")
	var aErr *AuthorizationError
	if !errors.As(err, &aErr) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestMarkPaid_RejectsUnsettledIntent(t *testing.T) {
	store := newFakeProfileStore()
	processor := newFakeProcessor()
	svc := newTestService(store, &fakePaymentLog{}, processor)
	sessionUser := uuid.New().String()

	intent := succeededIntent(processor, sessionUser)
	intent.Status = StatusProcessing

	err := svc.MarkPaid(context.Background(), sessionUser, sessionUser, "pi_done")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.setCalls != 0 {
		t.Error("profile store must not be touched before the payment settles")
	}
}

func TestMarkPaid_Succeeds(t *testing.T) {
	store := newFakeProfileStore()
	log := &fakePaymentLog{}
	processor := newFakeProcessor()
	svc := newTestService(store, log, processor)
	sessionUser := uuid.New().String()
	succeededIntent(processor, sessionUser)

	if err := svc.MarkPaid(context.Background(), sessionUser, sessionUser, "pi_done"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uid := uuid.MustParse(sessionUser)
	if !store.isPaid(uid, PurposeRegistrationFee) {
		t.Error("user not marked paid")
	}
	if len(log.records) != 1 || log.records[0].source != SourceClient {
		t.Errorf("expected one client-sourced record, got %+v", log.records)
	}
}

func TestMarkPaid_WebhookWinsByLatestWrite(t *testing.T) {
	store := newFakeProfileStore()
	processor := newFakeProcessor()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := base
	svc := newTestService(store, &fakePaymentLog{}, processor)
	svc.Now = func() time.Time { return now }

	sessionUser := uuid.New().String()
	uid := uuid.MustParse(sessionUser)
	succeededIntent(processor, sessionUser)

	if err := svc.MarkPaid(context.Background(), sessionUser, sessionUser, "pi_done"); err != nil {
		t.Fatalf("mark-paid: %v", err)
	}

	now = base.Add(time.Minute)
	webhookRef := PaymentReference{IntentID: "pi_done", Amount: 1000, Currency: "usd", Status: "succeeded"}
	if err := svc.ApplyPaid(context.Background(), uid, PurposeRegistrationFee, webhookRef, SourceWebhook); err != nil {
		t.Fatalf("webhook apply: %v", err)
	}

	records := store.paid[uid]
	if len(records) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(records))
	}
	last := records[len(records)-1]
	if !last.paidAt.After(records[0].paidAt) {
		t.Error("webhook write should carry the later paidAt")
	}
}
