package registration

import "context"

// PaymentProcessor is the slice of the Stripe API this workflow consumes.
// The idempotency guarantee itself is the processor's contract: we only
// supply the key.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

type IntentParams struct {
	Amount         int64
	Currency       string
	Description    string
	ReceiptEmail   string
	Metadata       map[string]string
	IdempotencyKey string
}

// Intent statuses as the processor reports them. Only the terminal success
// state unlocks anything.
const (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusProcessing            = "processing"
	StatusSucceeded             = "succeeded"
	StatusCanceled              = "canceled"
)

// Intent mirrors the processor-side PaymentIntent fields this app reads. The
// processor stays the system of record; nothing here is persisted locally.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	Metadata     map[string]string
	LastError    string
}
