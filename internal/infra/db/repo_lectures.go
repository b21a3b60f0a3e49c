package db

import (
	"context"
	"errors"

	"lecturehub/internal/domain"

	"gorm.io/gorm"
)

var errDBUnavailable = errors.New("db unavailable")

type LectureRepository struct {
	db *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{db: db}
}

func (r *LectureRepository) FindByID(ctx context.Context, id int) (domain.Lecture, error) {
	if r.db == nil {
		return domain.Lecture{}, errDBUnavailable
	}
	var model LectureModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Lecture{}, domain.ErrNotFound
		}
		return domain.Lecture{}, err
	}
	return model.toDomain(), nil
}

func (r *LectureRepository) FindByName(ctx context.Context, name string) (domain.Lecture, error) {
	if r.db == nil {
		return domain.Lecture{}, errDBUnavailable
	}
	var model LectureModel
	err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Lecture{}, domain.ErrNotFound
		}
		return domain.Lecture{}, err
	}
	return model.toDomain(), nil
}

func (r *LectureRepository) Save(ctx context.Context, lecture domain.Lecture) (domain.Lecture, error) {
	if r.db == nil {
		return domain.Lecture{}, errDBUnavailable
	}
	model := lectureModel(lecture)
	var err error
	if model.ID == 0 {
		err = r.db.WithContext(ctx).Create(&model).Error
	} else {
		err = r.db.WithContext(ctx).Save(&model).Error
	}
	if err != nil {
		return domain.Lecture{}, err
	}
	return model.toDomain(), nil
}

func (r *LectureRepository) FindAll(ctx context.Context, page, size int) ([]domain.Lecture, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&LectureModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []LectureModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	lectures := make([]domain.Lecture, 0, len(models))
	for _, model := range models {
		lectures = append(lectures, model.toDomain())
	}
	return lectures, total, nil
}
