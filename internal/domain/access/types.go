package access

// Reason explains a gate denial so the router can pick the right redirect:
// needs-auth goes to the login page, needs-payment to the registration
// payment page.
type Reason string

const (
	ReasonOK           Reason = "ok"
	ReasonNeedsAuth    Reason = "needs-auth"
	ReasonBanned       Reason = "banned"
	ReasonNeedsPayment Reason = "needs-payment"
)

// Route carries the gate-relevant flags of a routed page.
type Route struct {
	RequiresAuth             bool
	RequiresPaidRegistration bool
}

type Decision struct {
	Allow  bool
	Reason Reason
}

func allow() Decision {
	return Decision{Allow: true, Reason: ReasonOK}
}

func deny(r Reason) Decision {
	return Decision{Allow: false, Reason: r}
}
