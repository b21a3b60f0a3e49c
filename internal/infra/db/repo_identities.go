package db

import (
	"context"
	"errors"
	"time"

	"lecturehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) FindBySubject(ctx context.Context, subjectID string) (domain.Identity, error) {
	if r.db == nil {
		return domain.Identity{}, errDBUnavailable
	}
	var model IdentityModel
	err := r.db.WithContext(ctx).First(&model, "subject_id = ?", subjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, domain.ErrNotFound
		}
		return domain.Identity{}, err
	}
	return model.toDomain(), nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (domain.Identity, string, error) {
	if r.db == nil {
		return domain.Identity{}, "", errDBUnavailable
	}
	var model IdentityModel
	err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, "", domain.ErrNotFound
		}
		return domain.Identity{}, "", err
	}
	return model.toDomain(), model.Password, nil
}

func (r *IdentityRepository) Save(ctx context.Context, identity domain.Identity, passwordHash string) (domain.Identity, error) {
	if r.db == nil {
		return domain.Identity{}, errDBUnavailable
	}
	model := IdentityModel{
		SubjectID: identity.SubjectID,
		Name:      identity.DisplayName,
		Email:     identity.Email,
		Password:  passwordHash,
		Roles:     joinRoles(identity.Roles),
		CreatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		return domain.Identity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Identity{}, domain.ErrConflict
	}
	return model.toDomain(), nil
}
