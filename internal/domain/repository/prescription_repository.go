package repository

import (
	"health-admin-backoffice/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, detail *entity.PrescriptionDetail) error
	FindByID(db *gorm.DB, id uint, includeDrugs, includeDiagnoses bool) (*entity.PrescriptionDetail, error)
	Update(db *gorm.DB, detail *entity.PrescriptionDetail) error
	Delete(db *gorm.DB, id uint) (int64, error)

	CreateDrugLine(db *gorm.DB, line *entity.PrescriptionDrug) error
	DeleteDrugLine(db *gorm.DB, id uint) (int64, error)
	DeleteDrugLinesByPrescription(db *gorm.DB, prescriptionID uint) error

	CreateDiagnosisLine(db *gorm.DB, line *entity.PrescriptionDiagnosis) error
	DeleteDiagnosisLine(db *gorm.DB, id uint) (int64, error)
	DeleteDiagnosisLinesByPrescription(db *gorm.DB, prescriptionID uint) error
	ClearPrimaryDiagnosis(db *gorm.DB, prescriptionID uint) error
}
