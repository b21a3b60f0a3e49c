package db

import (
	"strings"
	"time"

	"lecturehub/internal/domain"
)

type IdentityModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SubjectID string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	Roles     string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (IdentityModel) TableName() string {
	return "identities"
}

func (m IdentityModel) toDomain() domain.Identity {
	return domain.Identity{
		SubjectID:   m.SubjectID,
		DisplayName: m.Name,
		Email:       m.Email,
		Roles:       splitRoles(m.Roles),
	}
}

type LectureModel struct {
	ID                int       `gorm:"primaryKey;autoIncrement"`
	Name              string    `gorm:"uniqueIndex;not null"`
	Description       string    `gorm:"not null"`
	BeginEnrollment   time.Time `gorm:"column:begin_enrollment;not null"`
	CloseEnrollment   time.Time `gorm:"column:close_enrollment;not null"`
	BeginLecture      time.Time `gorm:"column:begin_lecture;not null"`
	EndLecture        time.Time `gorm:"column:end_lecture;not null"`
	Location          string
	BasePrice         int
	MaxPrice          int
	LimitOfEnrollment int
	Offline           bool
	Free              bool
	Status            string `gorm:"not null"`
	OwnerSubjectID    string `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (LectureModel) TableName() string {
	return "lectures"
}

func (m LectureModel) toDomain() domain.Lecture {
	return domain.Lecture{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		BeginEnrollment:   m.BeginEnrollment,
		CloseEnrollment:   m.CloseEnrollment,
		BeginLecture:      m.BeginLecture,
		EndLecture:        m.EndLecture,
		Location:          m.Location,
		BasePrice:         m.BasePrice,
		MaxPrice:          m.MaxPrice,
		LimitOfEnrollment: m.LimitOfEnrollment,
		Offline:           m.Offline,
		Free:              m.Free,
		Status:            domain.LectureStatus(m.Status),
		OwnerID:           m.OwnerSubjectID,
	}
}

func lectureModel(l domain.Lecture) LectureModel {
	return LectureModel{
		ID:                l.ID,
		Name:              l.Name,
		Description:       l.Description,
		BeginEnrollment:   l.BeginEnrollment,
		CloseEnrollment:   l.CloseEnrollment,
		BeginLecture:      l.BeginLecture,
		EndLecture:        l.EndLecture,
		Location:          l.Location,
		BasePrice:         l.BasePrice,
		MaxPrice:          l.MaxPrice,
		LimitOfEnrollment: l.LimitOfEnrollment,
		Offline:           l.Offline,
		Free:              l.Free,
		Status:            string(l.Status),
		OwnerSubjectID:    l.OwnerID,
	}
}

func splitRoles(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func joinRoles(roles []string) string {
	return strings.Join(roles, ",")
}
