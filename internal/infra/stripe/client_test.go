package stripe

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stripe/stripe-go/v75"

	"haulsaver-app/internal/registration"
)

func TestClassifyError(t *testing.T) {
	var (
		cfgErr *registration.ConfigurationError
		vErr   *registration.ValidationError
		pErr   *registration.ProcessorError
	)

	t.Run("bad API key is a configuration error", func(t *testing.T) {
		// Stripe rejects invalid keys with 401 + invalid_request_error.
		err := classifyError(&stripe.Error{
			HTTPStatusCode: http.StatusUnauthorized,
			Type:           stripe.ErrorTypeInvalidRequest,
			Msg:            "Invalid API Key provided",
		})
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigurationError, got %T: %v", err, err)
		}
	})

	t.Run("malformed request is a validation error", func(t *testing.T) {
		err := classifyError(&stripe.Error{
			HTTPStatusCode: http.StatusBadRequest,
			Type:           stripe.ErrorTypeInvalidRequest,
			Msg:            "Amount must be at least 50 cents",
		})
		if !errors.As(err, &vErr) {
			t.Errorf("expected ValidationError, got %T: %v", err, err)
		}
	})

	t.Run("card and API faults are processor errors", func(t *testing.T) {
		for _, typ := range []stripe.ErrorType{stripe.ErrorTypeCard, stripe.ErrorTypeAPI, stripe.ErrorTypeIdempotency} {
			err := classifyError(&stripe.Error{HTTPStatusCode: http.StatusPaymentRequired, Type: typ})
			if !errors.As(err, &pErr) {
				t.Errorf("type %q: expected ProcessorError, got %T: %v", typ, err, err)
			}
		}
	})

	t.Run("transport errors keep the cause in the chain", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := classifyError(cause)
		if !errors.As(err, &pErr) {
			t.Fatalf("expected ProcessorError, got %T: %v", err, err)
		}
		if !errors.Is(err, cause) {
			t.Error("original transport error lost from the chain")
		}
	})
}
