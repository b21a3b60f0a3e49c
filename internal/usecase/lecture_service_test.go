package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lecturehub/internal/domain"
	"lecturehub/internal/infra/auth"
)

func newLectureService(t *testing.T) (*LectureService, *fakeLectureRepo, *fakeIdentityRepo) {
	t.Helper()
	lectures := newFakeLectureRepo()
	identities := newFakeIdentityRepo()
	return NewLectureService(lectures, identities, auth.NewGate()), lectures, identities
}

func registeredIdentity(t *testing.T, identities *fakeIdentityRepo, subjectID, email string) domain.Identity {
	t.Helper()
	identity := domain.Identity{SubjectID: subjectID, DisplayName: subjectID, Email: email, Roles: []string{domain.RoleUser}}
	if _, err := identities.Save(context.Background(), identity, "hashed:pw"); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	return identity
}

func TestCreateAssignsOwnerAndDerivedFields(t *testing.T) {
	svc, lectures, identities := newLectureService(t)
	caller := registeredIdentity(t, identities, "subject-a", "a@aa.com")

	in := validInput()
	in.Location = ""
	in.BasePrice = 0
	in.MaxPrice = 0

	view, err := svc.Create(context.Background(), in, caller)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	lecture := view.Lecture
	if lecture.ID == 0 {
		t.Fatalf("storage should assign an id")
	}
	if lecture.OwnerID != "subject-a" {
		t.Fatalf("OwnerID = %q, want subject-a", lecture.OwnerID)
	}
	if view.OwnerEmail != "a@aa.com" {
		t.Fatalf("OwnerEmail = %q, want a@aa.com", view.OwnerEmail)
	}
	if lecture.Offline {
		t.Fatalf("no location means online")
	}
	if !lecture.Free {
		t.Fatalf("zero prices mean free")
	}
	if lecture.Status != domain.StatusDraft {
		t.Fatalf("Status = %q, want DRAFT", lecture.Status)
	}
	if lectures.saveCalls != 1 {
		t.Fatalf("saveCalls = %d, want 1", lectures.saveCalls)
	}
}

func TestCreateByAnonymousLeavesLectureUnowned(t *testing.T) {
	svc, _, _ := newLectureService(t)
	view, err := svc.Create(context.Background(), validInput(), domain.Anonymous())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if view.Lecture.OwnerID != "" {
		t.Fatalf("OwnerID = %q, want empty", view.Lecture.OwnerID)
	}
	if view.OwnerEmail != "" {
		t.Fatalf("OwnerEmail = %q, want empty", view.OwnerEmail)
	}
}

func TestCreateInvalidTemporalOrderDoesNotPersist(t *testing.T) {
	svc, lectures, _ := newLectureService(t)

	// enrollment 2024-01-01..01-10, lecture begins 01-11 but ends 01-05
	in := validInput()
	in.BeginEnrollment = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in.CloseEnrollment = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	in.BeginLecture = time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	in.EndLecture = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), in, domain.Anonymous())
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Create = %v, want ValidationError", err)
	}
	if lectures.saveCalls != 0 {
		t.Fatalf("saveCalls = %d, persistence must not be reached", lectures.saveCalls)
	}
}

func TestUpdateByOwner(t *testing.T) {
	svc, _, identities := newLectureService(t)
	owner := registeredIdentity(t, identities, "subject-a", "a@aa.com")

	created, err := svc.Create(context.Background(), validInput(), owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := validInput()
	in.Name = "Go Concurrency, Revised"
	in.Location = "Gangnam"
	view, err := svc.Update(context.Background(), created.Lecture.ID, in, owner)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if view.Lecture.Name != "Go Concurrency, Revised" {
		t.Fatalf("Name = %q", view.Lecture.Name)
	}
	if !view.Lecture.Offline {
		t.Fatalf("location set, lecture should be offline")
	}
	if view.Lecture.OwnerID != "subject-a" {
		t.Fatalf("owner must not change on update: %q", view.Lecture.OwnerID)
	}
}

func TestUpdateByDifferentSubjectIsUnauthorized(t *testing.T) {
	svc, lectures, identities := newLectureService(t)
	owner := registeredIdentity(t, identities, "subject-a", "a@aa.com")
	other := registeredIdentity(t, identities, "subject-b", "b@aa.com")

	created, err := svc.Create(context.Background(), validInput(), owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	saves := lectures.saveCalls

	in := validInput()
	in.Name = "Hijacked"
	_, err = svc.Update(context.Background(), created.Lecture.ID, in, other)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Update = %v, want ErrUnauthorized", err)
	}
	if lectures.saveCalls != saves {
		t.Fatalf("denied update must not persist")
	}
}

func TestUpdateByAnonymousOnOwnedLectureIsUnauthorized(t *testing.T) {
	svc, _, identities := newLectureService(t)
	owner := registeredIdentity(t, identities, "subject-a", "a@aa.com")
	created, err := svc.Create(context.Background(), validInput(), owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = svc.Update(context.Background(), created.Lecture.ID, validInput(), domain.Anonymous())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Update = %v, want ErrUnauthorized", err)
	}
}

func TestUpdateUnownedLectureIsOpen(t *testing.T) {
	svc, _, identities := newLectureService(t)
	anyone := registeredIdentity(t, identities, "subject-b", "b@aa.com")

	created, err := svc.Create(context.Background(), validInput(), domain.Anonymous())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	in := validInput()
	in.Description = "claimed by nobody, edited by anyone"
	view, err := svc.Update(context.Background(), created.Lecture.ID, in, anyone)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if view.Lecture.OwnerID != "" {
		t.Fatalf("update must not attach an owner: %q", view.Lecture.OwnerID)
	}
}

func TestUpdateMissingLecture(t *testing.T) {
	svc, _, _ := newLectureService(t)
	_, err := svc.Update(context.Background(), 404, validInput(), domain.Anonymous())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update = %v, want ErrNotFound", err)
	}
}

func TestUpdateKeepingOwnNameIsNotACollision(t *testing.T) {
	svc, _, identities := newLectureService(t)
	owner := registeredIdentity(t, identities, "subject-a", "a@aa.com")
	created, err := svc.Create(context.Background(), validInput(), owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	in := validInput() // same name as the stored lecture
	if _, err := svc.Update(context.Background(), created.Lecture.ID, in, owner); err != nil {
		t.Fatalf("Update with unchanged name: %v", err)
	}
}

func TestGetMissingLecture(t *testing.T) {
	svc, _, _ := newLectureService(t)
	_, err := svc.Get(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get = %v, want ErrNotFound", err)
	}
}

func TestListPages(t *testing.T) {
	svc, _, _ := newLectureService(t)
	for i := 0; i < 5; i++ {
		in := validInput()
		in.Name = in.Name + " " + string(rune('A'+i))
		if _, err := svc.Create(context.Background(), in, domain.Anonymous()); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	views, total, err := svc.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
}
