package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// fakeProcessor honors the real processor's idempotency contract: identical
// idempotency keys return the same intent.
type fakeProcessor struct {
	byKey       map[string]*Intent
	byID        map[string]*Intent
	createCalls int
	createErr   error
	getErr      error
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{
		byKey: map[string]*Intent{},
		byID:  map[string]*Intent{},
	}
}

func (f *fakeProcessor) CreateIntent(ctx context.Context, params IntentParams) (*Intent, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if existing, ok := f.byKey[params.IdempotencyKey]; ok {
		return existing, nil
	}
	intent := &Intent{
		ID:           fmt.Sprintf("pi_%d", len(f.byKey)+1),
		ClientSecret: fmt.Sprintf("pi_%d_secret", len(f.byKey)+1),
		Status:       StatusRequiresPaymentMethod,
		Amount:       params.Amount,
		Currency:     params.Currency,
		Metadata:     params.Metadata,
	}
	f.byKey[params.IdempotencyKey] = intent
	f.byID[intent.ID] = intent
	return intent, nil
}

func (f *fakeProcessor) GetIntent(ctx context.Context, id string) (*Intent, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	intent, ok := f.byID[id]
	if !ok {
		return nil, &ProcessorError{Msg: "no such intent", Err: errors.New("not found")}
	}
	return intent, nil
}

type paidRecord struct {
	purpose string
	ref     PaymentReference
	paidAt  time.Time
}

type fakeProfileStore struct {
	paid     map[uuid.UUID][]paidRecord
	setCalls int
	err      error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{paid: map[uuid.UUID][]paidRecord{}}
}

func (f *fakeProfileStore) SetFeePaid(ctx context.Context, userID uuid.UUID, purpose string, ref PaymentReference, paidAt time.Time) error {
	f.setCalls++
	if f.err != nil {
		return f.err
	}
	f.paid[userID] = append(f.paid[userID], paidRecord{purpose: purpose, ref: ref, paidAt: paidAt})
	return nil
}

func (f *fakeProfileStore) isPaid(userID uuid.UUID, purpose string) bool {
	for _, rec := range f.paid[userID] {
		if rec.purpose == purpose {
			return true
		}
	}
	return false
}

type recordedPayment struct {
	userID         uuid.UUID
	purpose        string
	ref            PaymentReference
	source         string
	profileUpdated bool
}

type fakePaymentLog struct {
	records []recordedPayment
	err     error
}

func (f *fakePaymentLog) RecordFeePayment(ctx context.Context, userID uuid.UUID, purpose string, ref PaymentReference, source string, profileUpdated bool) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, recordedPayment{
		userID:         userID,
		purpose:        purpose,
		ref:            ref,
		source:         source,
		profileUpdated: profileUpdated,
	})
	return nil
}

func testFees() *Fees {
	fees, err := NewFees(
		Fee{Amount: 1000, Currency: "usd", Description: "registration fee"},
		Fee{Amount: 499, Currency: "usd", Description: "profile unlock"},
	)
	if err != nil {
		panic(err)
	}
	return fees
}
