package repository

import (
	"errors"

	"health-admin-backoffice/internal/domain/entity"
	domainRepo "health-admin-backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, detail *entity.PrescriptionDetail) error {
	return db.Create(detail).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uint, includeDrugs, includeDiagnoses bool) (*entity.PrescriptionDetail, error) {
	query := db
	if includeDrugs {
		query = query.Preload("Drugs", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}
	if includeDiagnoses {
		query = query.Preload("Diagnoses", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}

	var detail entity.PrescriptionDetail
	err := query.Where("id = ?", id).First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, detail *entity.PrescriptionDetail) error {
	return db.Save(detail).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.PrescriptionDetail{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) CreateDrugLine(db *gorm.DB, line *entity.PrescriptionDrug) error {
	return db.Create(line).Error
}

func (r *prescriptionRepository) DeleteDrugLine(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.PrescriptionDrug{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) DeleteDrugLinesByPrescription(db *gorm.DB, prescriptionID uint) error {
	return db.Where("prescription_id = ?", prescriptionID).Delete(&entity.PrescriptionDrug{}).Error
}

func (r *prescriptionRepository) CreateDiagnosisLine(db *gorm.DB, line *entity.PrescriptionDiagnosis) error {
	return db.Create(line).Error
}

func (r *prescriptionRepository) DeleteDiagnosisLine(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.PrescriptionDiagnosis{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) DeleteDiagnosisLinesByPrescription(db *gorm.DB, prescriptionID uint) error {
	return db.Where("prescription_id = ?", prescriptionID).Delete(&entity.PrescriptionDiagnosis{}).Error
}

func (r *prescriptionRepository) ClearPrimaryDiagnosis(db *gorm.DB, prescriptionID uint) error {
	return db.Model(&entity.PrescriptionDiagnosis{}).
		Where("prescription_id = ? AND is_primary = true", prescriptionID).
		Update("is_primary", false).Error
}
