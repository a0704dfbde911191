package repository

import (
	"health-admin-backoffice/internal/domain/entity"
	domainRepo "health-admin-backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.Create(diagnosis).Error
}

func (r *diagnosisRepository) FindAll(db *gorm.DB) ([]entity.Diagnosis, error) {
	var items []entity.Diagnosis
	if err := db.Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *diagnosisRepository) FindByListID(db *gorm.DB, listID uuid.UUID) ([]entity.Diagnosis, error) {
	var items []entity.Diagnosis
	if err := db.Where("list_id = ?", listID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *diagnosisRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Diagnosis{})
	return result.RowsAffected, result.Error
}

type drugRepository struct{}

func NewDrugRepository() domainRepo.DrugRepository {
	return &drugRepository{}
}

func (r *drugRepository) Create(db *gorm.DB, drug *entity.Drug) error {
	return db.Create(drug).Error
}

func (r *drugRepository) FindAll(db *gorm.DB) ([]entity.Drug, error) {
	var items []entity.Drug
	if err := db.Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *drugRepository) FindByListID(db *gorm.DB, listID uuid.UUID) ([]entity.Drug, error) {
	var items []entity.Drug
	if err := db.Where("list_id = ?", listID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *drugRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Drug{})
	return result.RowsAffected, result.Error
}

type clinicianRepository struct{}

func NewClinicianRepository() domainRepo.ClinicianRepository {
	return &clinicianRepository{}
}

func (r *clinicianRepository) Create(db *gorm.DB, clinician *entity.Clinician) error {
	return db.Create(clinician).Error
}

func (r *clinicianRepository) CreateBatch(db *gorm.DB, clinicians []entity.Clinician) error {
	return db.CreateInBatches(&clinicians, 200).Error
}

func (r *clinicianRepository) FindByListID(db *gorm.DB, listID uuid.UUID) ([]entity.Clinician, error) {
	var items []entity.Clinician
	if err := db.Where("clinician_list_id = ?", listID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *clinicianRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Clinician{})
	return result.RowsAffected, result.Error
}
