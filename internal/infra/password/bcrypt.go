package password

import (
	"lecturehub/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes login passwords. Cost zero falls back to the
// library default.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare returns domain.ErrBadCredentials on mismatch so callers never
// learn whether the hash or the password was at fault.
func (h BcryptHasher) Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return domain.ErrBadCredentials
	}
	return nil
}
