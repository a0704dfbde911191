package repository

import (
	"health-admin-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindAll(db *gorm.DB) ([]entity.Diagnosis, error)
	FindByListID(db *gorm.DB, listID uuid.UUID) ([]entity.Diagnosis, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type DrugRepository interface {
	Create(db *gorm.DB, drug *entity.Drug) error
	FindAll(db *gorm.DB) ([]entity.Drug, error)
	FindByListID(db *gorm.DB, listID uuid.UUID) ([]entity.Drug, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type ClinicianRepository interface {
	Create(db *gorm.DB, clinician *entity.Clinician) error
	CreateBatch(db *gorm.DB, clinicians []entity.Clinician) error
	FindByListID(db *gorm.DB, listID uuid.UUID) ([]entity.Clinician, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
