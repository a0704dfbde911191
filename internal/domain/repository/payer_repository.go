package repository

import (
	"health-admin-backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayerRepository interface {
	Create(db *gorm.DB, payer *entity.Payer) error
	FindAll(db *gorm.DB) ([]entity.Payer, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payer, error)
	Update(db *gorm.DB, payer *entity.Payer) error

	FindCredentialByPayerID(db *gorm.DB, payerID uuid.UUID) (*entity.PayerHACredential, error)
	CreateCredential(db *gorm.DB, credential *entity.PayerHACredential) error
}
