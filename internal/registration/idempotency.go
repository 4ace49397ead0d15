package registration

import (
	"strconv"
	"strings"
)

// IdempotencyKey derives the key handed to Stripe on intent creation.
// Identical inputs always produce the identical key within one environment,
// so UI re-renders, double-submits and post-timeout retries all collapse onto
// the same underlying PaymentIntent instead of authorizing twice.
func IdempotencyKey(purpose, env, userID string, amount int64, currency string) string {
	return strings.Join([]string{
		purpose,
		env,
		userID,
		strconv.FormatInt(amount, 10),
		currency,
	}, ":")
}
