package domain

import "time"

type LectureStatus string

const (
	StatusDraft           LectureStatus = "DRAFT"
	StatusPublished       LectureStatus = "PUBLISHED"
	StatusBeganEnrollment LectureStatus = "BEGAN_ENROLLMENT"
)

// Lecture is the single business entity served by the API. Offline and
// Free are derived fields; DeriveFields recomputes them and is the only
// code allowed to set them.
type Lecture struct {
	ID                int
	Name              string
	Description       string
	BeginEnrollment   time.Time
	CloseEnrollment   time.Time
	BeginLecture      time.Time
	EndLecture        time.Time
	Location          string
	BasePrice         int
	MaxPrice          int
	LimitOfEnrollment int
	Offline           bool
	Free              bool
	Status            LectureStatus
	// OwnerID is the subject id of the identity that created the
	// lecture. Empty means unowned (legacy records, anonymous create).
	// Immutable once set.
	OwnerID string
}

// DeriveFields recomputes the derived booleans and assigns the default
// status. Input values for Offline and Free are never trusted.
// Idempotent: DeriveFields(DeriveFields(l)) == DeriveFields(l).
func DeriveFields(l Lecture) Lecture {
	l.Offline = l.Location != ""
	l.Free = l.BasePrice == 0 && l.MaxPrice == 0
	if l.Status == "" {
		l.Status = StatusDraft
	}
	return l
}

// LectureInput carries the mutable fields of a create or update request
// through the validation pipeline. ID is zero for creates and set to the
// target lecture for updates so business rules can exclude the record
// being updated.
type LectureInput struct {
	ID                int
	Name              string
	Description       string
	BeginEnrollment   time.Time
	CloseEnrollment   time.Time
	BeginLecture      time.Time
	EndLecture        time.Time
	Location          string
	BasePrice         int
	MaxPrice          int
	LimitOfEnrollment int
}

// Apply copies the input onto an existing lecture, leaving ID and
// OwnerID untouched.
func (in LectureInput) Apply(l Lecture) Lecture {
	l.Name = in.Name
	l.Description = in.Description
	l.BeginEnrollment = in.BeginEnrollment
	l.CloseEnrollment = in.CloseEnrollment
	l.BeginLecture = in.BeginLecture
	l.EndLecture = in.EndLecture
	l.Location = in.Location
	l.BasePrice = in.BasePrice
	l.MaxPrice = in.MaxPrice
	l.LimitOfEnrollment = in.LimitOfEnrollment
	return l
}
