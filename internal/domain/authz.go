package domain

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorizer decides whether an identity may perform an operation that
// requires a role, targets an owned resource, or both. Implementations
// must be pure: same inputs, same decision, no I/O.
type Authorizer interface {
	Authorize(identity Identity, requiredRole string, resourceOwner string) Decision
}
