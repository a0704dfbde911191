package repository

import (
	"errors"

	"health-admin-backoffice/internal/domain/entity"
	domainRepo "health-admin-backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type payerRepository struct{}

func NewPayerRepository() domainRepo.PayerRepository {
	return &payerRepository{}
}

func (r *payerRepository) Create(db *gorm.DB, payer *entity.Payer) error {
	return db.Create(payer).Error
}

func (r *payerRepository) FindAll(db *gorm.DB) ([]entity.Payer, error) {
	var payers []entity.Payer
	if err := db.Order("created_at").Find(&payers).Error; err != nil {
		return nil, err
	}
	return payers, nil
}

func (r *payerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payer, error) {
	var payer entity.Payer
	err := db.Where("id = ?", id).First(&payer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payer, nil
}

func (r *payerRepository) Update(db *gorm.DB, payer *entity.Payer) error {
	return db.Save(payer).Error
}

func (r *payerRepository) FindCredentialByPayerID(db *gorm.DB, payerID uuid.UUID) (*entity.PayerHACredential, error) {
	var credential entity.PayerHACredential
	err := db.Where("payer_id = ?", payerID).First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *payerRepository) CreateCredential(db *gorm.DB, credential *entity.PayerHACredential) error {
	return db.Create(credential).Error
}
