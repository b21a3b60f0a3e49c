package usecase

import (
	"context"
	"errors"
	"log"

	"lecturehub/internal/domain"
)

type seedAccount struct {
	name     string
	email    string
	password string
	roles    []string
}

var seedAccounts = []seedAccount{
	{name: "adminboot", email: "admin@aa.com", password: "pwd1", roles: []string{domain.RoleAdmin, domain.RoleUser}},
	{name: "userboot", email: "user@aa.com", password: "pwd2", roles: []string{domain.RoleUser}},
}

// SeedAccounts registers the built-in admin and user accounts. Accounts
// that already exist are left untouched.
func SeedAccounts(ctx context.Context, identities *IdentityService) error {
	for _, account := range seedAccounts {
		_, err := identities.Register(ctx, RegisterInput{
			Name:     account.name,
			Email:    account.email,
			Password: account.password,
			Roles:    account.roles,
		})
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				log.Printf("seed account %s already present", account.email)
				continue
			}
			return err
		}
		log.Printf("seeded account %s", account.email)
	}
	return nil
}
