// Package token implements the credential service as HS256 JWTs with
// registered claims only: sub carries the subject id, exp the expiry.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lecturehub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 30 * time.Minute

// IdentityStore resolves a credential subject back to a stored
// identity. It is the only collaborator Verify touches.
type IdentityStore interface {
	FindBySubject(ctx context.Context, subjectID string) (domain.Identity, error)
}

type Service struct {
	secret     []byte
	ttl        time.Duration
	identities IdentityStore
	now        func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source, used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(secret string, ttl time.Duration, identities IdentityStore, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Service{
		secret:     []byte(secret),
		ttl:        ttl,
		identities: identities,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", errors.New("subject id is required")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

func (s *Service) Verify(ctx context.Context, tokenString string) (domain.Identity, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, fmt.Errorf("%w: %s", domain.ErrTokenMalformed, err)
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing subject claim", domain.ErrTokenMalformed)
	}
	identity, err := s.identities.FindBySubject(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrSubjectUnknown
		}
		return domain.Identity{}, err
	}
	return identity, nil
}
