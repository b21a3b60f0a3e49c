package auth

import (
	"context"
	"fmt"
	"strings"

	"lecturehub/internal/domain"
)

// IdentityResolver turns an Authorization header into a verified
// identity. No credential resolves to the anonymous identity; a
// credential that is present but unusable resolves to
// domain.ErrUnauthenticated. The two outcomes stay distinct so a
// protected route can report a client error instead of silently
// downgrading a bad token to anonymous access.
type IdentityResolver struct {
	Tokens domain.TokenService
}

func NewIdentityResolver(tokens domain.TokenService) *IdentityResolver {
	return &IdentityResolver{Tokens: tokens}
}

func (r *IdentityResolver) Resolve(ctx context.Context, authorizationHeader string) (domain.Identity, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return domain.Anonymous(), nil
	}
	token := extractBearerToken(header)
	if token == "" {
		return domain.Identity{}, fmt.Errorf("%w: authorization scheme must be bearer", domain.ErrUnauthenticated)
	}
	identity, err := r.Tokens.Verify(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, err)
	}
	return identity, nil
}

func extractBearerToken(value string) string {
	if !strings.HasPrefix(strings.ToLower(value), "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[len("bearer "):])
}
