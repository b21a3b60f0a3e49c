package usecase

import (
	"context"
	"errors"

	"lecturehub/internal/domain"
)

// Pipeline runs schema checks, then business checks. Business rules
// never run while schema findings exist, and nothing is persisted while
// either stage reports findings. The business stage is a capability
// interface so rule sets can be swapped per resource type.
type Pipeline struct {
	Schema   domain.LectureValidator
	Business domain.LectureValidator
}

func (p Pipeline) Validate(ctx context.Context, input domain.LectureInput) ([]domain.FieldError, error) {
	if p.Schema != nil {
		findings, err := p.Schema.Validate(ctx, input)
		if err != nil {
			return nil, err
		}
		if len(findings) > 0 {
			return findings, nil
		}
	}
	if p.Business == nil {
		return nil, nil
	}
	return p.Business.Validate(ctx, input)
}

// schemaRule is one declarative field check. check returns a message
// when the rule is violated, empty otherwise.
type schemaRule struct {
	field string
	check func(domain.LectureInput) string
}

// SchemaValidator covers structural checks that need no stored state:
// required fields and the temporal ordering invariant
// enrollBegin < enrollClose <= lectureBegin < lectureEnd.
type SchemaValidator struct {
	rules []schemaRule
}

func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{rules: []schemaRule{
		{"name", func(in domain.LectureInput) string {
			if in.Name == "" {
				return "name is required"
			}
			return ""
		}},
		{"description", func(in domain.LectureInput) string {
			if in.Description == "" {
				return "description is required"
			}
			return ""
		}},
		{"beginEnrollmentDateTime", func(in domain.LectureInput) string {
			if in.BeginEnrollment.IsZero() {
				return "beginEnrollmentDateTime is required"
			}
			return ""
		}},
		{"closeEnrollmentDateTime", func(in domain.LectureInput) string {
			if in.CloseEnrollment.IsZero() {
				return "closeEnrollmentDateTime is required"
			}
			if !in.BeginEnrollment.IsZero() && !in.CloseEnrollment.After(in.BeginEnrollment) {
				return "closeEnrollmentDateTime must be after beginEnrollmentDateTime"
			}
			return ""
		}},
		{"beginLectureDateTime", func(in domain.LectureInput) string {
			if in.BeginLecture.IsZero() {
				return "beginLectureDateTime is required"
			}
			if !in.CloseEnrollment.IsZero() && in.BeginLecture.Before(in.CloseEnrollment) {
				return "beginLectureDateTime must not be before closeEnrollmentDateTime"
			}
			return ""
		}},
		{"endLectureDateTime", func(in domain.LectureInput) string {
			if in.EndLecture.IsZero() {
				return "endLectureDateTime is required"
			}
			if !in.BeginLecture.IsZero() && !in.EndLecture.After(in.BeginLecture) {
				return "endLectureDateTime must be after beginLectureDateTime"
			}
			return ""
		}},
		{"basePrice", func(in domain.LectureInput) string {
			if in.BasePrice < 0 {
				return "basePrice must not be negative"
			}
			return ""
		}},
		{"maxPrice", func(in domain.LectureInput) string {
			if in.MaxPrice < 0 {
				return "maxPrice must not be negative"
			}
			return ""
		}},
		{"limitOfEnrollment", func(in domain.LectureInput) string {
			if in.LimitOfEnrollment < 0 {
				return "limitOfEnrollment must not be negative"
			}
			return ""
		}},
	}}
}

func (v *SchemaValidator) Validate(_ context.Context, input domain.LectureInput) ([]domain.FieldError, error) {
	var findings []domain.FieldError
	for _, rule := range v.rules {
		if msg := rule.check(input); msg != "" {
			findings = append(findings, domain.FieldError{Field: rule.field, Message: msg})
		}
	}
	return findings, nil
}

// BusinessRules is the default stage-2 rule set: name uniqueness and
// price-tier consistency.
type BusinessRules struct {
	Lectures LectureRepository
}

func NewBusinessRules(lectures LectureRepository) *BusinessRules {
	return &BusinessRules{Lectures: lectures}
}

func (v *BusinessRules) Validate(ctx context.Context, input domain.LectureInput) ([]domain.FieldError, error) {
	var findings []domain.FieldError
	if input.MaxPrice != 0 && input.BasePrice > input.MaxPrice {
		findings = append(findings, domain.FieldError{
			Field:   "basePrice",
			Message: "basePrice must not exceed maxPrice",
		})
	}
	existing, err := v.Lectures.FindByName(ctx, input.Name)
	switch {
	case err == nil:
		if existing.ID != input.ID {
			findings = append(findings, domain.FieldError{
				Field:   "name",
				Message: "a lecture with this name already exists",
			})
		}
	case errors.Is(err, domain.ErrNotFound):
		// name is free
	default:
		return nil, err
	}
	return findings, nil
}
