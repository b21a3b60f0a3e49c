package domain

import "context"

// TokenService issues and verifies signed credentials. Verify is pure
// apart from a single lookup against the identity store; expiry is
// checked at verification time, never by a background sweep.
type TokenService interface {
	Issue(subjectID string) (string, error)
	// Verify returns ErrTokenExpired, ErrTokenMalformed or
	// ErrSubjectUnknown (possibly wrapped) on failure.
	Verify(ctx context.Context, token string) (Identity, error)
}

// LectureValidator is one stage of the validation pipeline. A nil
// error with an empty slice means the input passed. A non-nil error
// reports an infrastructure failure, not a validation finding.
type LectureValidator interface {
	Validate(ctx context.Context, input LectureInput) ([]FieldError, error)
}
