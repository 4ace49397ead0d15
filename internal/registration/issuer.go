package registration

import (
	"context"

	"go.uber.org/zap"
)

// IntentRequest is what the client may influence: who is paying and where the
// receipt goes. Amount and currency come from the fee catalog.
type IntentRequest struct {
	UserID  string
	Email   string
	FeeType FeeType
}

// IntentResponse is the one canonical response shape for intent creation.
type IntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// Issuer creates-or-reuses payment intents for one-time fees. At most one
// live authorization exists per (user, fee type, amount, currency, env)
// because every call for that tuple carries the same idempotency key.
type Issuer struct {
	Fees      *Fees
	Processor PaymentProcessor
	Env       string
	Logger    *zap.Logger
}

func (i *Issuer) CreateOrReuseIntent(ctx context.Context, req IntentRequest) (*IntentResponse, error) {
	if req.UserID == "" {
		return nil, &ValidationError{Msg: "missing userId"}
	}
	feeType := req.FeeType
	if feeType == "" {
		feeType = FeeRegistration
	}

	fee, err := i.Fees.Resolve(feeType)
	if err != nil {
		return nil, err
	}

	key := IdempotencyKey(fee.Purpose, i.Env, req.UserID, fee.Amount, fee.Currency)

	i.Logger.Info("creating payment intent",
		zap.String("purpose", fee.Purpose),
		zap.String("user_id", req.UserID),
		zap.Int64("amount", fee.Amount),
		zap.String("currency", fee.Currency),
		zap.String("idempotency_key", maskKey(key)),
	)

	intent, err := i.Processor.CreateIntent(ctx, IntentParams{
		Amount:       fee.Amount,
		Currency:     fee.Currency,
		Description:  fee.Description,
		ReceiptEmail: req.Email,
		Metadata: map[string]string{
			"purpose": fee.Purpose,
			"userId":  req.UserID,
			"env":     i.Env,
		},
		IdempotencyKey: key,
	})
	if err != nil {
		i.Logger.Error("payment intent creation failed",
			zap.String("user_id", req.UserID),
			zap.String("purpose", fee.Purpose),
			zap.Error(err),
		)
		return nil, err
	}

	// The client secret is deliberately absent from logs.
	i.Logger.Info("payment intent ready",
		zap.String("intent_id", intent.ID),
		zap.String("status", intent.Status),
	)

	return &IntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// LookupIntent is a read-only fetch used by the debug endpoint.
func (i *Issuer) LookupIntent(ctx context.Context, id string) (*Intent, error) {
	if id == "" {
		return nil, &ValidationError{Msg: "missing intent id"}
	}
	return i.Processor.GetIntent(ctx, id)
}

// maskKey keeps enough of an idempotency key to correlate log lines without
// exposing the full value.
func maskKey(key string) string {
	if len(key) <= 10 {
		return "…"
	}
	return key[:6] + "…" + key[len(key)-4:]
}
