package repository

import (
	"errors"

	"health-admin-backoffice/internal/domain/entity"
	domainRepo "health-admin-backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthAuthorityRepository struct{}

func NewHealthAuthorityRepository() domainRepo.HealthAuthorityRepository {
	return &healthAuthorityRepository{}
}

func (r *healthAuthorityRepository) CreateBatch(db *gorm.DB, authorities []entity.HealthAuthority) error {
	return db.Create(&authorities).Error
}

func (r *healthAuthorityRepository) FindAll(db *gorm.DB) ([]entity.HealthAuthority, error) {
	var authorities []entity.HealthAuthority
	err := db.
		Preload("DiagnosisList").
		Preload("DrugList").
		Preload("ClinicianList").
		Order("created_at").
		Find(&authorities).Error
	if err != nil {
		return nil, err
	}
	return authorities, nil
}

func (r *healthAuthorityRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthAuthority, error) {
	var authority entity.HealthAuthority
	err := db.
		Preload("DiagnosisList").
		Preload("DrugList").
		Preload("ClinicianList").
		Where("id = ?", id).
		First(&authority).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &authority, nil
}

func (r *healthAuthorityRepository) Update(db *gorm.DB, authority *entity.HealthAuthority) error {
	// Save with Select("*") so cleared bindings (nil FKs) are written too.
	return db.Model(authority).Select("*").Omit("created_at").Updates(authority).Error
}
