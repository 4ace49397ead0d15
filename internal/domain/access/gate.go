package access

import (
	"github.com/google/uuid"

	"haulsaver-app/internal/domain/users"
)

// CanAccess decides whether a user may render a protected route. It is pure
// and total: a nil or zero-ID user simply counts as unauthenticated, missing
// fields count as deny. The caller does the actual redirect.
func CanAccess(route Route, u *users.User) Decision {
	authenticated := u != nil && u.ID != uuid.Nil

	if route.RequiresAuth {
		if !authenticated {
			return deny(ReasonNeedsAuth)
		}
		if u.Banned {
			return deny(ReasonBanned)
		}
	}

	if route.RequiresPaidRegistration {
		if !authenticated {
			return deny(ReasonNeedsAuth)
		}
		if u.Banned {
			return deny(ReasonBanned)
		}
		if !users.IsRegistrationPaid(u) {
			return deny(ReasonNeedsPayment)
		}
	}

	return allow()
}
