package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lecturehub/internal/domain"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Roles    []string
}

type LoginInput struct {
	Email    string
	Password string
	// ClientKey scopes login throttling, typically the remote IP.
	ClientKey string
}

// IdentityService registers identities and exchanges credentials for
// signed tokens.
type IdentityService struct {
	Identities IdentityRepository
	Hasher     PasswordHasher
	Tokens     domain.TokenService

	Limiter     domain.RateLimiter
	LoginLimit  int
	LoginWindow time.Duration
}

func NewIdentityService(identities IdentityRepository, hasher PasswordHasher, tokens domain.TokenService) *IdentityService {
	return &IdentityService{
		Identities: identities,
		Hasher:     hasher,
		Tokens:     tokens,
	}
}

// Register stores a new identity with a freshly assigned subject id.
// The subject id is immutable from here on.
func (s *IdentityService) Register(ctx context.Context, input RegisterInput) (domain.Identity, error) {
	var findings []domain.FieldError
	if strings.TrimSpace(input.Name) == "" {
		findings = append(findings, domain.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		findings = append(findings, domain.FieldError{Field: "email", Message: "email is required"})
	}
	if input.Password == "" {
		findings = append(findings, domain.FieldError{Field: "password", Message: "password is required"})
	}
	if len(findings) > 0 {
		return domain.Identity{}, domain.NewValidationError(findings)
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	hash, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return domain.Identity{}, err
	}
	identity := domain.Identity{
		SubjectID:   uuid.NewString(),
		DisplayName: strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Roles:       roles,
	}
	saved, err := s.Identities.Save(ctx, identity, hash)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Identity{}, domain.NewValidationError([]domain.FieldError{
				{Field: "email", Message: "email is already registered"},
			})
		}
		return domain.Identity{}, err
	}
	return saved, nil
}

// Login verifies the password and issues a fresh credential. There is
// no refresh: re-authentication is the only way to a new token.
func (s *IdentityService) Login(ctx context.Context, input LoginInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.allowAttempt(ctx, email, input.ClientKey); err != nil {
		return "", err
	}
	identity, hash, err := s.Identities.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrBadCredentials
		}
		return "", err
	}
	if err := s.Hasher.Compare(hash, input.Password); err != nil {
		return "", err
	}
	return s.Tokens.Issue(identity.SubjectID)
}

func (s *IdentityService) allowAttempt(ctx context.Context, email, clientKey string) error {
	if s.Limiter == nil || s.LoginLimit <= 0 {
		return nil
	}
	key := fmt.Sprintf("login:%s:%s", email, clientKey)
	decision, err := s.Limiter.Allow(ctx, key, s.LoginLimit, s.LoginWindow)
	if err != nil {
		// throttling is best effort; an unavailable limiter never
		// locks out logins
		return nil
	}
	if !decision.Allowed {
		return domain.ErrRateLimited
	}
	return nil
}
