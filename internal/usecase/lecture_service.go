package usecase

import (
	"context"
	"errors"
	"fmt"

	"lecturehub/internal/domain"
)

// LectureView pairs a lecture with its owner's email for response
// assembly. OwnerEmail is empty for unowned records.
type LectureView struct {
	Lecture    domain.Lecture
	OwnerEmail string
}

// LectureService drives the mutation flow: validation pipeline, then
// authorization, then derived-field computation, then persistence.
type LectureService struct {
	Lectures   LectureRepository
	Identities IdentityRepository
	Pipeline   Pipeline
	Gate       domain.Authorizer
}

func NewLectureService(lectures LectureRepository, identities IdentityRepository, gate domain.Authorizer) *LectureService {
	return &LectureService{
		Lectures:   lectures,
		Identities: identities,
		Pipeline: Pipeline{
			Schema:   NewSchemaValidator(),
			Business: NewBusinessRules(lectures),
		},
		Gate: gate,
	}
}

// Create stores a new lecture owned by the caller, or unowned when the
// caller is anonymous.
func (s *LectureService) Create(ctx context.Context, input domain.LectureInput, caller domain.Identity) (LectureView, error) {
	input.ID = 0
	if err := s.runPipeline(ctx, input); err != nil {
		return LectureView{}, err
	}
	lecture := domain.DeriveFields(input.Apply(domain.Lecture{OwnerID: caller.SubjectID}))
	saved, err := s.Lectures.Save(ctx, lecture)
	if err != nil {
		return LectureView{}, err
	}
	return s.view(ctx, saved)
}

func (s *LectureService) Get(ctx context.Context, id int) (LectureView, error) {
	lecture, err := s.Lectures.FindByID(ctx, id)
	if err != nil {
		return LectureView{}, err
	}
	return s.view(ctx, lecture)
}

// Update replaces every mutable field of an existing lecture. The
// caller must be the owner; unowned lectures accept updates from any
// caller. ID and owner never change.
func (s *LectureService) Update(ctx context.Context, id int, input domain.LectureInput, caller domain.Identity) (LectureView, error) {
	existing, err := s.Lectures.FindByID(ctx, id)
	if err != nil {
		return LectureView{}, err
	}
	input.ID = existing.ID
	if err := s.runPipeline(ctx, input); err != nil {
		return LectureView{}, err
	}
	if decision := s.Gate.Authorize(caller, "", existing.OwnerID); !decision.Allowed {
		return LectureView{}, fmt.Errorf("%w: %s", domain.ErrUnauthorized, decision.Reason)
	}
	updated := domain.DeriveFields(input.Apply(existing))
	saved, err := s.Lectures.Save(ctx, updated)
	if err != nil {
		return LectureView{}, err
	}
	return s.view(ctx, saved)
}

// List returns one page of lectures plus the total count. Role
// enforcement happens at the route; the service only pages.
func (s *LectureService) List(ctx context.Context, page, size int) ([]LectureView, int64, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	lectures, total, err := s.Lectures.FindAll(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}
	views := make([]LectureView, 0, len(lectures))
	for _, lecture := range lectures {
		view, err := s.view(ctx, lecture)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}
	return views, total, nil
}

func (s *LectureService) runPipeline(ctx context.Context, input domain.LectureInput) error {
	findings, err := s.Pipeline.Validate(ctx, input)
	if err != nil {
		return err
	}
	if len(findings) > 0 {
		return domain.NewValidationError(findings)
	}
	return nil
}

func (s *LectureService) view(ctx context.Context, lecture domain.Lecture) (LectureView, error) {
	view := LectureView{Lecture: lecture}
	if lecture.OwnerID == "" || s.Identities == nil {
		return view, nil
	}
	owner, err := s.Identities.FindBySubject(ctx, lecture.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// legacy record whose owner is gone; representation stays ownerless
			return view, nil
		}
		return LectureView{}, err
	}
	view.OwnerEmail = owner.Email
	return view, nil
}
