package usecase

import (
	"context"

	"lecturehub/internal/domain"
)

// LectureRepository is the persistence contract for lectures. Save
// creates when ID is zero and updates otherwise; implementations must
// provide read-after-write consistency per key.
type LectureRepository interface {
	FindByID(ctx context.Context, id int) (domain.Lecture, error)
	FindByName(ctx context.Context, name string) (domain.Lecture, error)
	Save(ctx context.Context, lecture domain.Lecture) (domain.Lecture, error)
	// FindAll returns one page (zero-based) and the total record count.
	FindAll(ctx context.Context, page, size int) ([]domain.Lecture, int64, error)
}

// IdentityRepository stores identities together with their password
// hashes. The hash never rides on domain.Identity.
type IdentityRepository interface {
	FindBySubject(ctx context.Context, subjectID string) (domain.Identity, error)
	// FindByEmail returns the identity and its password hash.
	FindByEmail(ctx context.Context, email string) (domain.Identity, string, error)
	// Save returns domain.ErrConflict when the email is already taken.
	Save(ctx context.Context, identity domain.Identity, passwordHash string) (domain.Identity, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
