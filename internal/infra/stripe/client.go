package stripe

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"

	"haulsaver-app/internal/registration"
)

// Processor is the stripe-go backed registration.PaymentProcessor.
type Processor struct{}

// NewProcessor wires the global stripe client with a bounded HTTP timeout so
// a stuck processor call fails the one request instead of hanging it.
func NewProcessor(secretKey string) *Processor {
	stripe.Key = secretKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: 8 * time.Second},
	}))
	return &Processor{}
}

func (p *Processor) CreateIntent(ctx context.Context, params registration.IntentParams) (*registration.Intent, error) {
	piParams := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(params.IdempotencyKey),
		},
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if params.Description != "" {
		piParams.Description = stripe.String(params.Description)
	}
	if params.ReceiptEmail != "" {
		piParams.ReceiptEmail = stripe.String(params.ReceiptEmail)
	}
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(piParams)
	if err != nil {
		return nil, classifyError(err)
	}
	return fromStripeIntent(pi), nil
}

func (p *Processor) GetIntent(ctx context.Context, id string) (*registration.Intent, error) {
	pi, err := paymentintent.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *registration.Intent {
	intent := &registration.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
	if pi.LastPaymentError != nil {
		intent.LastError = pi.LastPaymentError.Msg
	}
	return intent
}

// classifyError maps stripe-go errors onto the workflow taxonomy. Stripe
// reports bad or revoked API keys as a 401 invalid_request_error, so the
// credential check goes by HTTP status before the error type. Malformed
// requests are validation, everything else is a processor fault whose message
// stays server-side.
func classifyError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == http.StatusUnauthorized {
			return &registration.ConfigurationError{Msg: "payment processor credentials rejected"}
		}
		if stripeErr.Type == stripe.ErrorTypeInvalidRequest {
			return &registration.ValidationError{Msg: "payment request rejected by processor"}
		}
	}
	return &registration.ProcessorError{Msg: "payment processor unavailable", Err: err}
}
