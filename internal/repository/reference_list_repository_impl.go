package repository

import (
	"errors"

	"health-admin-backoffice/internal/domain/entity"
	domainRepo "health-admin-backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisListRepository struct{}

func NewDiagnosisListRepository() domainRepo.DiagnosisListRepository {
	return &diagnosisListRepository{}
}

func (r *diagnosisListRepository) CreateBatch(db *gorm.DB, lists []entity.DiagnosisList) error {
	return db.Create(&lists).Error
}

func (r *diagnosisListRepository) FindAll(db *gorm.DB) ([]entity.DiagnosisList, error) {
	var lists []entity.DiagnosisList
	if err := db.Order("created_at").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *diagnosisListRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisList, error) {
	var list entity.DiagnosisList
	err := db.Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *diagnosisListRepository) FindByIDWithItems(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisList, error) {
	var list entity.DiagnosisList
	err := db.Preload("Diagnoses", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *diagnosisListRepository) Update(db *gorm.DB, list *entity.DiagnosisList) error {
	return db.Save(list).Error
}

func (r *diagnosisListRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DiagnosisList{})
	return result.RowsAffected, result.Error
}

type drugListRepository struct{}

func NewDrugListRepository() domainRepo.DrugListRepository {
	return &drugListRepository{}
}

func (r *drugListRepository) CreateBatch(db *gorm.DB, lists []entity.DrugList) error {
	return db.Create(&lists).Error
}

func (r *drugListRepository) FindAll(db *gorm.DB) ([]entity.DrugList, error) {
	var lists []entity.DrugList
	if err := db.Order("created_at").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *drugListRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DrugList, error) {
	var list entity.DrugList
	err := db.Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *drugListRepository) FindByIDWithItems(db *gorm.DB, id uuid.UUID) (*entity.DrugList, error) {
	var list entity.DrugList
	err := db.Preload("Drugs", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *drugListRepository) Update(db *gorm.DB, list *entity.DrugList) error {
	return db.Save(list).Error
}

func (r *drugListRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DrugList{})
	return result.RowsAffected, result.Error
}

type clinicianListRepository struct{}

func NewClinicianListRepository() domainRepo.ClinicianListRepository {
	return &clinicianListRepository{}
}

func (r *clinicianListRepository) CreateBatch(db *gorm.DB, lists []entity.ClinicianList) error {
	return db.Create(&lists).Error
}

func (r *clinicianListRepository) FindAll(db *gorm.DB) ([]entity.ClinicianList, error) {
	var lists []entity.ClinicianList
	if err := db.Order("created_at").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *clinicianListRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ClinicianList, error) {
	var list entity.ClinicianList
	err := db.Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *clinicianListRepository) FindByIDWithItems(db *gorm.DB, id uuid.UUID) (*entity.ClinicianList, error) {
	var list entity.ClinicianList
	err := db.Preload("Clinicians", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *clinicianListRepository) Update(db *gorm.DB, list *entity.ClinicianList) error {
	return db.Save(list).Error
}

func (r *clinicianListRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ClinicianList{})
	return result.RowsAffected, result.Error
}
