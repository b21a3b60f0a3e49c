package auth

import "lecturehub/internal/domain"

const (
	ReasonMissingRole  = "missing role"
	ReasonNotOwner     = "not owner"
	ReasonAuthRequired = "authentication required"
)

// Gate decides role- and ownership-based access. Decisions are pure
// functions of their inputs; the rules run in a fixed order so a coarse
// role failure is reported before any ownership concern:
//
//  1. required role not held        -> deny "missing role"
//  2. owned resource, other subject -> deny "not owner"
//  3. owned resource, anonymous     -> deny "authentication required"
//  4. otherwise                     -> allow
//
// An unowned resource is open to any caller that clears the role check.
// No role overrides ownership.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

func (g *Gate) Authorize(identity domain.Identity, requiredRole string, resourceOwner string) domain.Decision {
	if requiredRole != "" && !identity.HasRole(requiredRole) {
		return domain.Deny(ReasonMissingRole)
	}
	if resourceOwner != "" {
		if identity.SubjectID != "" && identity.SubjectID != resourceOwner {
			return domain.Deny(ReasonNotOwner)
		}
		if identity.IsAnonymous() {
			return domain.Deny(ReasonAuthRequired)
		}
	}
	return domain.Allow()
}
