package repository

import (
	"health-admin-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiagnosisListRepository interface {
	CreateBatch(db *gorm.DB, lists []entity.DiagnosisList) error
	FindAll(db *gorm.DB) ([]entity.DiagnosisList, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisList, error)
	FindByIDWithItems(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisList, error)
	Update(db *gorm.DB, list *entity.DiagnosisList) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type DrugListRepository interface {
	CreateBatch(db *gorm.DB, lists []entity.DrugList) error
	FindAll(db *gorm.DB) ([]entity.DrugList, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DrugList, error)
	FindByIDWithItems(db *gorm.DB, id uuid.UUID) (*entity.DrugList, error)
	Update(db *gorm.DB, list *entity.DrugList) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type ClinicianListRepository interface {
	CreateBatch(db *gorm.DB, lists []entity.ClinicianList) error
	FindAll(db *gorm.DB) ([]entity.ClinicianList, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ClinicianList, error)
	FindByIDWithItems(db *gorm.DB, id uuid.UUID) (*entity.ClinicianList, error)
	Update(db *gorm.DB, list *entity.ClinicianList) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
