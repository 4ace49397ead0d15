package registration

// Error taxonomy for the fee workflow. Handlers map these onto HTTP statuses;
// processor messages never reach the client verbatim.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

// ProcessorError wraps a failed or unexpected payment-processor call. Err
// keeps the original error for logs; Error() is safe to log but the handler
// still replies with a generic message.
type ProcessorError struct {
	Msg string
	Err error
}

func (e *ProcessorError) Error() string { return e.Msg }

func (e *ProcessorError) Unwrap() error { return e.Err }

// ProfileStoreError marks a post-payment profile update failure. The payment
// already succeeded, so callers log for reconciliation instead of surfacing a
// payment failure to anyone.
type ProfileStoreError struct {
	Err error
}

func (e *ProfileStoreError) Error() string { return "profile update failed: " + e.Err.Error() }

func (e *ProfileStoreError) Unwrap() error { return e.Err }
